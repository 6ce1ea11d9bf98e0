package model

type Language struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ContentType string `json:"content_type"`
}

type LanguageList struct {
	Languages    []Language `json:"languages"`
	SPJLanguages []Language `json:"spj_languages"`
}
