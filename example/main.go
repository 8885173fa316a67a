package main

import (
	"log"
	"os"
	"time"

	"github.com/jatronizer/configurator"
)

// SMTPConfig holds the settings of one mail relay. Two independently
// prefixed instances are managed side by side below.
type SMTPConfig struct {
	Host    string        `config:"host" usage:"address of the smtp server"`
	Port    int           `config:"port" usage:"port of the smtp server"`
	Timeout time.Duration `config:"timeout" usage:"connect timeout"`
}

type AppConfig struct {
	Verbose bool `config:"verbose" usage:"enable verbose logging"`
}

func main() {
	warn := &SMTPConfig{Host: "localhost", Port: 587, Timeout: 5 * time.Second}
	errs := &SMTPConfig{Host: "localhost", Port: 587, Timeout: 5 * time.Second}
	app := &AppConfig{}

	conf, err := configurator.Merge(
		configurator.MustFromStruct("warnmail", "relay for warnings", "warn/", warn),
		configurator.MustFromStruct("errmail", "relay for errors", "err/", errs),
		configurator.MustFromStruct("app", "general settings", "", app),
	)
	if err != nil {
		log.Fatal(err)
	}

	if len(os.Args) > 1 && os.Args[1] == "-help" {
		configurator.PrintHelp(os.Stderr, conf, "MYAPP_")
		return
	}

	// environment first, arguments override
	if _, err := configurator.SetFromEnv(conf, "MYAPP_"); err != nil {
		log.Fatal(err)
	}
	unused, err := configurator.SetFromArgs(conf, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	for _, arg := range unused {
		log.Printf("ignored argument %q", arg)
	}

	log.Printf("warn relay %s:%d, err relay %s:%d, verbose=%v",
		warn.Host, warn.Port, errs.Host, errs.Port, app.Verbose)
}
