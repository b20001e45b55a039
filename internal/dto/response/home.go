package response

type HomeResponse struct {
	App   string `json:"app"`
	Links []Link `json:"links"`
}

type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type WelcomeResponse struct {
	Message  string `json:"message"`
	NumTimes int    `json:"num_times"`
}
