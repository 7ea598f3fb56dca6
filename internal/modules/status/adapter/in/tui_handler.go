package in

import (
	"context"

	"cyberdeck/internal/modules/status/dto"
	statusin "cyberdeck/internal/modules/status/port/in"
)

type TUIHandler struct {
	usecase statusin.Usecase
}

func NewTUIHandler(usecase statusin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Tick(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Tick(ctx)
}
