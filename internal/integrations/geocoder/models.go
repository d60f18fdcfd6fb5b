package geocoder

// searchResult модель одного кандидата из ответа геокодера
// Координаты приходят числовыми строками
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}
