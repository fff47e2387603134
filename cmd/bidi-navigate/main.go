// File: cmd/bidi-navigate/main.go
// bidi-navigate is a minimal example client: it starts a BiDi session
// against a running WebDriver BiDi remote end, opens a new tab,
// navigates it to the given URL, and prints the resulting page title
// via script.evaluate.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/momentics/webdriverbidi-go/bootstrap"
	"github.com/momentics/webdriverbidi-go/model/browsingcontext"
	"github.com/momentics/webdriverbidi-go/model/script"
	"github.com/momentics/webdriverbidi-go/session"
)

func main() {
	remote := flag.String("remote", "http://localhost:9222", "base URL of the WebDriver remote end")
	url := flag.String("url", "https://example.com", "URL to navigate to")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	caps := bootstrap.NewCapabilitiesRequest()
	sess, err := session.Start(ctx, *remote, caps, session.DefaultConfig())
	if err != nil {
		log.Fatalf("start session: %v", err)
	}
	defer sess.Close(context.Background())

	created, err := sess.BrowsingContextCreate(ctx, browsingcontext.CreateParams{Type: "tab"})
	if err != nil {
		log.Fatalf("create context: %v", err)
	}

	nav, err := sess.BrowsingContextNavigate(ctx, browsingcontext.NavigateParams{
		Context: created.Context,
		URL:     *url,
		Wait:    browsingcontext.ReadinessComplete,
	})
	if err != nil {
		log.Fatalf("navigate: %v", err)
	}
	fmt.Printf("navigated to %s (navigation id %v)\n", nav.URL, nav.Navigation)

	result, err := sess.ScriptEvaluate(ctx, script.EvaluateParameters{
		Expression:   "document.title",
		Target:       script.NewContextTarget(created.Context, nil),
		AwaitPromise: false,
	})
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}
	if result.Type == "success" && result.Result != nil {
		fmt.Printf("title: %v\n", result.Result.Value)
	} else if result.ExceptionDetails != nil {
		fmt.Fprintf(os.Stderr, "evaluate threw: %s\n", result.ExceptionDetails.Text)
	}
}
