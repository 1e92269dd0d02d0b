package main

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	Execute()
}
