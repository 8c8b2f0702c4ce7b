package api

// NumberToWordsResponse is the success body of convertNumberToWords.
type NumberToWordsResponse struct {
	NumberToWordsResult string `json:"numberToWordsResult"`
}

// NumberToDollarsResponse is the success body of convertNumberToDollars.
type NumberToDollarsResponse struct {
	NumberToDollarsResult string `json:"numberToDollarsResult"`
}
