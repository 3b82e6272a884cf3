package dto

type Envelope struct {
	Data   any  `json:"data"`
	Error  bool `json:"error"`
	Status int  `json:"status"`
}
