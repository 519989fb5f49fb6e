package main

import (
	"log"
	"net"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// serve runs app on ln until a signal arrives on stop, then stops accepting
// connections and waits up to grace for in-flight requests. It returns only
// once the server has fully stopped.
func serve(app *fiber.App, ln net.Listener, stop <-chan os.Signal, grace time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Printf("Received %s, draining in-flight requests...", sig)
	}

	if err := app.ShutdownWithTimeout(grace); err != nil {
		return err
	}
	return <-errCh
}
