package testutils

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync/atomic"
	"testing"
)

var (
	ubiNumPattern = regexp.MustCompile(`<ubiNum>([^<]*)</ubiNum>`)
	dNumPattern   = regexp.MustCompile(`<dNum>([^<]*)</dNum>`)
)

// DefaultWords is the phrase table FakeNumberConversionServer answers
// NumberToWords from. Trailing spaces match the real service.
var DefaultWords = map[string]string{
	"0":   "zero ",
	"5":   "five ",
	"7":   "seven ",
	"123": "one hundred and twenty three ",
}

// FakeNumberConversionServer is an httptest server speaking the subset of the
// Number Conversion SOAP contract the gateway uses. NumberToWords is answered
// from Words; NumberToDollars echoes the amount as "<dNum> dollars"; numbers
// missing from Words and unrecognized requests get a soap:Client fault with
// HTTP 500.
type FakeNumberConversionServer struct {
	*httptest.Server
	Words map[string]string

	requests atomic.Int64
}

// NewFakeNumberConversionServer starts a stand-in service that is closed when
// the test ends.
func NewFakeNumberConversionServer(t *testing.T) *FakeNumberConversionServer {
	t.Helper()
	f := &FakeNumberConversionServer{Words: DefaultWords}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Close)
	return f
}

// Requests returns how many requests the server has received.
func (f *FakeNumberConversionServer) Requests() int {
	return int(f.requests.Load())
}

func (f *FakeNumberConversionServer) handle(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)
	body, _ := io.ReadAll(r.Body)
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")

	if m := ubiNumPattern.FindSubmatch(body); m != nil {
		if words, ok := f.Words[string(m[1])]; ok {
			WriteSOAPBody(w, fmt.Sprintf(
				`<m:NumberToWordsResponse xmlns:m="http://www.dataaccess.com/webservicesserver/"><m:NumberToWordsResult>%s</m:NumberToWordsResult></m:NumberToWordsResponse>`,
				words))
			return
		}
	}
	if m := dNumPattern.FindSubmatch(body); m != nil {
		WriteSOAPBody(w, fmt.Sprintf(
			`<m:NumberToDollarsResponse xmlns:m="http://www.dataaccess.com/webservicesserver/"><m:NumberToDollarsResult>%s dollars</m:NumberToDollarsResult></m:NumberToDollarsResponse>`,
			m[1]))
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	WriteSOAPBody(w, `<soap:Fault><faultcode>soap:Client</faultcode><faultstring>unsupported request</faultstring></soap:Fault>`)
}

// WriteSOAPBody wraps content in a SOAP 1.1 envelope and writes it to w.
func WriteSOAPBody(w io.Writer, content string) {
	_, _ = io.WriteString(w, `<?xml version="1.0" encoding="utf-8"?>`+
		`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body>`+
		content+
		`</soap:Body></soap:Envelope>`)
}

// UnreachableEndpoint returns the URL of a server that has already been shut
// down, so connections to it are refused.
func UnreachableEndpoint(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()
	return endpoint
}
