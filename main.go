package main

import "github.com/disneysandhya1/RebootMe-Backend/cmd/rebootme"

func main() {
	rebootme.Execute()
}
