package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/wrenware/natter/internal/attachment"
	"github.com/wrenware/natter/internal/authurl"
	"github.com/wrenware/natter/internal/config"
	"github.com/wrenware/natter/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "classify":
		err = runClassify(os.Args[2:])
	case "sign":
		err = runSign(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:])
	case "config":
		err = runConfig(os.Args[2:])
	case "version":
		fmt.Println(version.Current())
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "natter: %v\n", err)
		os.Exit(1)
	}
}

func runClassify(args []string) error {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	var configPath string
	fs.StringVar(&configPath, "config", "", "config file with custom patterns")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("classify requires at least one name or URL")
	}

	cfg := config.Default()
	if strings.TrimSpace(configPath) != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	c, err := attachment.NewClassifier(cfg.Attachments.DocumentPatterns, cfg.Attachments.ImagePatterns)
	if err != nil {
		return err
	}

	for _, name := range fs.Args() {
		src := c.Source(name, nil, attachment.File{Name: name})
		fmt.Printf("%s\t%s\n", src.Kind(), name)
	}
	return nil
}

func runSign(args []string) error {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	var secret string
	var ttl time.Duration
	fs.StringVar(&secret, "secret", "", "signing secret")
	fs.DurationVar(&ttl, "ttl", 15*time.Minute, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(secret) == "" {
		return fmt.Errorf("sign requires --secret")
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("sign requires at least one URL")
	}

	signer, err := authurl.NewSigner([]byte(secret), ttl)
	if err != nil {
		return err
	}
	for _, url := range fs.Args() {
		fmt.Println(signer.Decorate(url))
	}
	return nil
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	var secret string
	fs.StringVar(&secret, "secret", "", "signing secret")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(secret) == "" {
		return fmt.Errorf("verify requires --secret")
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("verify requires at least one URL")
	}

	signer, err := authurl.NewSigner([]byte(secret), 15*time.Minute)
	if err != nil {
		return err
	}
	bad := 0
	for _, url := range fs.Args() {
		if err := signer.Verify(url); err != nil {
			bad++
			fmt.Printf("invalid\t%s\t%v\n", url, err)
			continue
		}
		fmt.Printf("ok\t%s\n", url)
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d URLs failed verification", bad, fs.NArg())
	}
	return nil
}

func runConfig(args []string) error {
	if len(args) < 2 || args[0] != "validate" {
		return fmt.Errorf("usage: natter config validate <path>")
	}
	cfg, err := config.Load(args[1])
	if err != nil {
		return err
	}
	fmt.Printf("%s: OK (%d document patterns, %d image patterns, tooltip tolerance %ddp)\n",
		args[1], len(cfg.Attachments.DocumentPatterns), len(cfg.Attachments.ImagePatterns), cfg.Tooltip.ToleranceDp)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `natter - chat client components

Usage:
  natter <command> [flags]

Commands:
  classify  Resolve the render branch for names or URLs
  sign      Add auth tokens to attachment URLs
  verify    Check auth tokens on attachment URLs
  config    Validate a config file (config validate <path>)
  version   Print the version
  help      Show this help
`)
}
