package wiktionary

// apiResponse is the action=parse response in formatversion=2.
type apiResponse struct {
	Parse *apiParse `json:"parse"`
	Error *apiError `json:"error"`
}

type apiParse struct {
	Title    string `json:"title"`
	PageID   int    `json:"pageid"`
	Wikitext string `json:"wikitext"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}
