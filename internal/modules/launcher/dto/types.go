package dto

type AppOutput struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// SubmitOutput is the feedback for one command line. A zero value with
// Dispatched false means the line was blank.
type SubmitOutput struct {
	Verb            string     `json:"verb,omitempty"`
	Message         string     `json:"message"`
	Kind            string     `json:"kind,omitempty"`
	Dispatched      bool       `json:"dispatched"`
	Launched        *AppOutput `json:"launched,omitempty"`
	RegistryRebuilt bool       `json:"registry_rebuilt,omitempty"`
	Dismiss         bool       `json:"dismiss,omitempty"`
}

type RegistryOutput struct {
	Pinned []AppOutput `json:"pinned"`
	All    []AppOutput `json:"all"`
}
