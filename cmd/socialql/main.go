package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/webbomj/rsschool-nodejs-task-graphql/internal/eventbus"
	"github.com/webbomj/rsschool-nodejs-task-graphql/internal/otel"
	"github.com/webbomj/rsschool-nodejs-task-graphql/internal/schema"
	"github.com/webbomj/rsschool-nodejs-task-graphql/internal/server"
	"github.com/webbomj/rsschool-nodejs-task-graphql/internal/social"
	"github.com/webbomj/rsschool-nodejs-task-graphql/internal/store"
	"github.com/webbomj/rsschool-nodejs-task-graphql/internal/validate"
)

const rootUsage = `socialql — GraphQL query engine over a social graph

USAGE:
  socialql <command> [flags]

COMMANDS:
  serve            Run the HTTP GraphQL endpoint over an in-memory store
  render-sdl       Print the schema as SDL
  help             Show help for any command
`

const serveUsage = `serve FLAGS:
  -server.addr <addr>            HTTP listen address (default: :8080)
  -server.pretty                 Pretty-print JSON responses
  -server.timeout <duration>     Per-request timeout, e.g. 10s (default: 10s)
  -server.max-body <bytes>       Max request body size (default: 1048576)
  -server.cors-origin <origin>   Allowed CORS origin. Repeatable
  -graphql.max-depth <n>         Max operation depth (default: 5)
  -graphql.introspection <bool>  Enable GraphQL introspection (default: true)
  -graphql.graphiql <bool>       Serve the GraphiQL IDE on GET (default: true)
  -otel.endpoint <addr>          OTLP collector endpoint
  -otel.service <name>           OpenTelemetry service name (default: socialql)
`

const renderSDLUsage = `render-sdl FLAGS:
  -out <file>   Write SDL to file (default: stdout)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	switch cmd := args[0]; cmd {
	case "serve":
		return cmdServe(args[1:])
	case "render-sdl":
		return cmdRenderSDL(args[1:])
	case "help":
		return cmdHelp(args[1:])
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "serve":
		fmt.Print(serveUsage)
	case "render-sdl":
		fmt.Print(renderSDLUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

type stringListFlag []string

func (s *stringListFlag) String() string { return "" }

func (s *stringListFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func cmdServe(args []string) error {
	addr := ":8080"
	pretty := false
	timeout := 10 * time.Second
	maxBody := int64(1 << 20)
	maxDepth := validate.DefaultMaxDepth
	enableIntrospection := true
	enableGraphiQL := true
	otelEndpoint := ""
	otelService := "socialql"
	var corsOrigins stringListFlag

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&addr, "server.addr", addr, "HTTP listen address")
	fs.BoolVar(&pretty, "server.pretty", pretty, "Pretty-print JSON responses")
	fs.DurationVar(&timeout, "server.timeout", timeout, "Per-request timeout")
	fs.Int64Var(&maxBody, "server.max-body", maxBody, "Max request body size")
	fs.Var(&corsOrigins, "server.cors-origin", "Allowed CORS origin")
	fs.IntVar(&maxDepth, "graphql.max-depth", maxDepth, "Max operation depth")
	fs.BoolVar(&enableIntrospection, "graphql.introspection", enableIntrospection, "Enable GraphQL introspection")
	fs.BoolVar(&enableGraphiQL, "graphql.graphiql", enableGraphiQL, "Serve the GraphiQL IDE")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, serveUsage)
		return err
	}

	eventbus.Use(eventbus.New())
	shutdown, err := otel.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	sch, err := social.BuildSchema()
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}
	st := store.WithEvents(store.NewMemory())
	runtime := social.NewRuntime(st)

	sopts := []server.Option{
		server.WithMaxBodyBytes(maxBody),
		server.WithMaxDepth(maxDepth),
		server.WithIntrospection(enableIntrospection),
		server.WithGraphiQL(enableGraphiQL),
	}
	if pretty {
		sopts = append(sopts, server.WithPretty())
	}
	if timeout > 0 {
		sopts = append(sopts, server.WithTimeout(timeout))
	}
	if len(corsOrigins) > 0 {
		sopts = append(sopts, server.WithCORS(corsOrigins...))
	}
	h, err := server.New(runtime, sch, sopts...)
	if err != nil {
		return fmt.Errorf("server init: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/graphql", h)

	log.Printf("GraphQL server listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func cmdRenderSDL(args []string) error {
	outFile := ""
	fs := flag.NewFlagSet("render-sdl", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&outFile, "out", outFile, "Write SDL to file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, renderSDLUsage)
		return err
	}

	sch, err := social.BuildSchema()
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}
	sdl := schema.Render(sch)
	if outFile == "" {
		fmt.Print(sdl)
		return nil
	}
	return os.WriteFile(outFile, []byte(sdl), 0644)
}
