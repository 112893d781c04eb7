// Command oficina-nlu runs the understanding pipeline over a single
// utterance from the command line or stdin and prints the enriched payload
// as JSON. Useful for tuning rules.json without standing up the API.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"oficina/internal/core/langpack"
	"oficina/internal/platform/logger"
	querysvc "oficina/internal/services/query/service"
	respondsvc "oficina/internal/services/respond/service"
)

func main() {
	var (
		text   = flag.String("text", "", "utterance to parse (reads stdin when empty)")
		pretty = flag.Bool("pretty", true, "indent the JSON output")
	)
	flag.Parse()

	l := logger.Get()

	input := strings.TrimSpace(*text)
	if input == "" {
		sc := bufio.NewScanner(os.Stdin)
		sc.Buffer(make([]byte, 0, 64*1024), 64*1024)
		if sc.Scan() {
			input = strings.TrimSpace(sc.Text())
		}
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "usage: oficina-nlu -text \"quanto custa a troca de oleo?\"")
		os.Exit(2)
	}

	pack, err := langpack.Load()
	if err != nil {
		l.Panic().Err(err).Msg("load language pack")
	}

	parser := querysvc.New(pack)
	responder := respondsvc.New(pack, parser)

	// tag the run so pipeline debug lines correlate
	ctx := logger.WithRequest(context.Background(), uuid.NewString())

	out := responder.Enrich(ctx, input)

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		l.Panic().Err(err).Msg("encode output")
	}
}
