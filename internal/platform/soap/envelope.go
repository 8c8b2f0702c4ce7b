package soap

import "encoding/xml"

// EnvelopeNamespace is the SOAP 1.1 envelope namespace.
const EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"

// requestEnvelope is the outbound envelope. The soap: prefix is written
// literally; Content supplies its own element name via XMLName.
type requestEnvelope struct {
	XMLName xml.Name    `xml:"soap:Envelope"`
	SoapNS  string      `xml:"xmlns:soap,attr"`
	Body    requestBody `xml:"soap:Body"`
}

type requestBody struct {
	Content interface{}
}

// responseEnvelope matches by local name so both prefixed and default
// namespace responses decode.
type responseEnvelope struct {
	XMLName xml.Name     `xml:"Envelope"`
	Body    responseBody `xml:"Body"`
}

type responseBody struct {
	Fault *Fault `xml:"Fault"`
	Inner []byte `xml:",innerxml"`
}

// Fault is a SOAP 1.1 fault element.
type Fault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
	Actor  string `xml:"faultactor"`
}

// NumberToWordsRequest is the body of the NumberToWords operation.
// UbiNum is the lexical form of an xs:unsignedLong.
type NumberToWordsRequest struct {
	XMLName xml.Name `xml:"NumberToWords"`
	Xmlns   string   `xml:"xmlns,attr"`
	UbiNum  string   `xml:"ubiNum"`
}

// NumberToWordsResponse is the body returned by NumberToWords.
type NumberToWordsResponse struct {
	XMLName xml.Name `xml:"NumberToWordsResponse"`
	Result  string   `xml:"NumberToWordsResult"`
}

// NumberToDollarsRequest is the body of the NumberToDollars operation.
// DNum is the lexical form of an xs:decimal.
type NumberToDollarsRequest struct {
	XMLName xml.Name `xml:"NumberToDollars"`
	Xmlns   string   `xml:"xmlns,attr"`
	DNum    string   `xml:"dNum"`
}

// NumberToDollarsResponse is the body returned by NumberToDollars.
type NumberToDollarsResponse struct {
	XMLName xml.Name `xml:"NumberToDollarsResponse"`
	Result  string   `xml:"NumberToDollarsResult"`
}
