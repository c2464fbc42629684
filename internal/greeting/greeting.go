package greeting

func Hello() string {
	return "Hello"
}
