package health

type Input struct{}

type Output struct {
	Status int
	Body   Response
}

type Response struct {
	Status string `json:"status" example:"OK" doc:"Health status of the service"`
}
