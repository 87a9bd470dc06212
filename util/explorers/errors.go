package explorers

import "fmt"

// StatusError is returned for any non-2xx HTTP response.
type StatusError struct {
	URL  string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned http %d: %s", e.URL, e.Code, e.Body)
}

// APIError is a 2xx response whose Subscan envelope reports a failure.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("subscan error %d: %s", e.Code, e.Message)
}
