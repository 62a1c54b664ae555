package response_models

type PlaceWeatherResponse struct {
	Name    string `json:"name"`
	Weather string `json:"weather"`
}

type PlacePhotoResponse struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
}
