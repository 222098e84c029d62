// Command circctl runs circulation desk operations against the library database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/go-petr/pet-library/internal/borrowerrepo"
	"github.com/go-petr/pet-library/internal/borrowerservice"
	"github.com/go-petr/pet-library/internal/finerepo"
	"github.com/go-petr/pet-library/internal/fineservice"
	"github.com/go-petr/pet-library/internal/loanrepo"
	"github.com/go-petr/pet-library/internal/loanservice"
	"github.com/go-petr/pet-library/internal/middleware"
	"github.com/go-petr/pet-library/internal/summaryrepo"
	"github.com/go-petr/pet-library/internal/summaryservice"
	"github.com/go-petr/pet-library/pkg/configpkg"
	"github.com/go-petr/pet-library/pkg/dbpkg"
)

const usage = `Usage: circctl [-config <dir>] <command> [args]

Commands:
  register -identity <XXX-XX-XXXX> -name <name> -address <address> [-first] [-last] [-email] [-phone]
  borrower <card_id>              show a borrower with open loans and unpaid fines
  borrowers <term>                search borrowers by name, card id or identity number
  checkout -isbn <isbn> -card <card_id>
  checkin <loan_id>...            return loans, already returned ones are skipped
  loans [-card <card_id>] [-isbn <isbn>] [<term>]
  fines update                    reconcile fines and print the unpaid summary
  fines unpaid                    list borrowers owing fines
  fines show [-all] <card_id>     list the fines of a borrower
  pay <card_id>                   settle every unpaid fine of a borrower
  summary                         show library wide counters
`

func main() {
	fs := flag.NewFlagSet("circctl", flag.ContinueOnError)

	var configPath string
	fs.StringVar(&configPath, "config", "./configs", "")
	fs.StringVar(&configPath, "c", "./configs", "")

	fs.Usage = func() { fmt.Fprint(os.Stdout, usage) }

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	config, err := configpkg.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot load config: %v\n", err)
		os.Exit(1)
	}

	logger := middleware.GetLogger(config)

	db, err := dbpkg.Setup(config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	borrowerService := borrowerservice.New(borrowerrepo.NewRepoPGS(db), config.StorageTimeout)
	loanService := loanservice.New(loanrepo.NewRepoPGS(db), config.StorageTimeout)
	fineService := fineservice.New(finerepo.NewRepoPGS(db), config.StorageTimeout)

	a := &app{
		borrowers: borrowerService,
		loans:     loanService,
		fines:     fineService,
		summary: summaryservice.New(
			summaryrepo.NewRepoPGS(db, config.DBDriver),
			borrowerService,
			loanService,
			fineService,
			config.StorageTimeout,
		),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	ctx := logger.WithContext(context.Background())

	code := a.run(ctx, fs.Args())

	_ = db.Close()

	os.Exit(code)
}
