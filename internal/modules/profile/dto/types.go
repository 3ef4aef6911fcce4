package dto

type ValidationOutput struct {
	Valid bool
	Error string
}

type SetOutput struct {
	Name       string
	Validation ValidationOutput
}
