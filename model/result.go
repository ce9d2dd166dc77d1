package model

// Result is what a summary run hands to its caller. Either Response or Error
// is set, never both.
type Result struct {
	VideoID   YoutubeVideoID `json:"video_id,omitempty"`
	VideoURL  string         `json:"video_url"`
	Response  string         `json:"response,omitempty"`
	Error     string         `json:"error,omitempty"`
	ErrorKind Kind           `json:"error_kind,omitempty"`
}

func (r Result) OK() bool {
	return r.Error == ""
}

func Success(id YoutubeVideoID, url, response string) Result {
	return Result{
		VideoID:  id,
		VideoURL: url,
		Response: response,
	}
}

func Failure(url string, kind Kind, message string) Result {
	return Result{
		VideoURL:  url,
		Error:     message,
		ErrorKind: kind,
	}
}
