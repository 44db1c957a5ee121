// Command summary renders the plain-text solutions summary for a share
// token, the same document the export endpoint serves.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"pacoupa/backend/internal/engine"
	"pacoupa/backend/internal/export"
	"pacoupa/backend/internal/share"
)

func main() {
	token := flag.String("token", "", "share token to decode")
	flag.Parse()

	if *token == "" && flag.NArg() > 0 {
		*token = flag.Arg(0)
	}
	if *token == "" {
		logrus.Fatal("usage: summary -token <share token>")
	}

	p := share.Decode(*token)
	if p == nil {
		logrus.Fatal("share token is not decodable")
	}

	profile := *p
	profile.EnvelopeQuality = engine.ClassifyEnvelope(profile)

	if missing := profile.MissingFields(); len(missing) > 0 {
		logrus.WithField("missing", missing).Warn("profile is incomplete")
	}
	if warning := profile.ConfigurationWarning(); warning != "" {
		logrus.Warn(warning)
	}

	result := engine.Compute(profile)
	fmt.Fprintln(os.Stdout, export.Text(profile, result, time.Now()))
}
