package service

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/shoplabs/shop-api/internal/core/ports"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func updateInput(id int, username, password, role string) ports.UpdateUserInput {
	return ports.UpdateUserInput{ID: id, Username: username, Password: password, Role: role}
}
