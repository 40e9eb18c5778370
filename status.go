package wirehttp

// Status codes as named by the HTTP/1.0 specification.
const (
	StatusOK                 = 200
	StatusCreated            = 201
	StatusAccepted           = 202
	StatusPartialInformation = 203
	StatusNoContent          = 204

	StatusMovedPermanently = 301
	StatusMovedTemporarily = 302
	StatusSeeOther         = 303
	StatusNotModified      = 304

	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusPaymentRequired = 402
	StatusForbidden       = 403
	StatusNotFound        = 404

	StatusInternalServerError = 500
	StatusNotImplemented      = 501
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
)

const (
	DefaultPort    = 80
	DefaultVersion = "HTTP/1.0"
)

var statusText = map[int]string{
	StatusOK:                 "OK",
	StatusCreated:            "Created",
	StatusAccepted:           "Accepted",
	StatusPartialInformation: "Partial Information",
	StatusNoContent:          "No Content",

	StatusMovedPermanently: "Moved Permanently",
	StatusMovedTemporarily: "Moved Temporarily",
	StatusSeeOther:         "See Other",
	StatusNotModified:      "Not Modified",

	StatusBadRequest:      "Bad Request",
	StatusUnauthorized:    "Unauthorized",
	StatusPaymentRequired: "Payment Required",
	StatusForbidden:       "Forbidden",
	StatusNotFound:        "Not Found",

	StatusInternalServerError: "Internal Server Error",
	StatusNotImplemented:      "Not Implemented",
	StatusBadGateway:          "Bad Gateway",
	StatusServiceUnavailable:  "Service Unavailable",
}

// StatusText returns the reason phrase for a known status code, or "".
func StatusText(code int) string {
	return statusText[code]
}
