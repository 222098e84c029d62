package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/go-petr/pet-library/internal/borrowerdelivery"
	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/internal/finedelivery"
	"github.com/go-petr/pet-library/internal/loandelivery"
	"github.com/go-petr/pet-library/internal/summarydelivery"
	"github.com/go-petr/pet-library/pkg/errorspkg"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// errUsage reports a malformed command line.
var errUsage = errors.New("invalid usage")

type app struct {
	borrowers borrowerdelivery.Service
	loans     loandelivery.Service
	fines     finedelivery.Service
	summary   summarydelivery.Service
	stdout    io.Writer
	stderr    io.Writer
}

// run executes the command in args and returns the process exit code.
func (a *app) run(ctx context.Context, args []string) int {
	commands := map[string]func(context.Context, []string) error{
		"register":  a.register,
		"borrower":  a.borrower,
		"borrowers": a.searchBorrowers,
		"checkout":  a.checkout,
		"checkin":   a.checkin,
		"loans":     a.listLoans,
		"fines":     a.finesCmd,
		"pay":       a.pay,
		"summary":   a.systemSummary,
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(a.stderr, "unknown command: %s\n", args[0])
		fmt.Fprint(a.stderr, usage)

		return 2
	}

	err := cmd(ctx, args[1:])

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		fmt.Fprint(a.stderr, usage)

		return 2
	default:
		fmt.Fprintf(a.stderr, "error: %v (%s)\n", err, errorspkg.KindOf(err))
		return 1
	}
}

func (a *app) print(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.stdout, string(b))

	return err
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", errUsage, fs.Name(), err)
	}

	return nil
}

func oneArg(name string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: %s takes exactly one argument", errUsage, name)
	}

	return args[0], nil
}

func (a *app) register(ctx context.Context, args []string) error {
	var arg domain.CreateBorrowerParams

	fs := newFlagSet("register")
	fs.StringVar(&arg.IdentityNumber, "identity", "", "")
	fs.StringVar(&arg.Name, "name", "", "")
	fs.StringVar(&arg.FirstName, "first", "", "")
	fs.StringVar(&arg.LastName, "last", "", "")
	fs.StringVar(&arg.Email, "email", "", "")
	fs.StringVar(&arg.Address, "address", "", "")
	fs.StringVar(&arg.Phone, "phone", "", "")

	if err := parse(fs, args); err != nil {
		return err
	}

	b, err := a.borrowers.Register(ctx, arg)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Borrower registered successfully. Card ID: %s\n", b.CardID)

	return nil
}

func (a *app) borrower(ctx context.Context, args []string) error {
	cardID, err := oneArg("borrower", args)
	if err != nil {
		return err
	}

	overview, err := a.summary.BorrowerOverview(ctx, cardID)
	if err != nil {
		return err
	}

	return a.print(overview)
}

func (a *app) searchBorrowers(ctx context.Context, args []string) error {
	term, err := oneArg("borrowers", args)
	if err != nil {
		return err
	}

	found, err := a.borrowers.Search(ctx, term)
	if err != nil {
		return err
	}

	return a.print(found)
}

func (a *app) checkout(ctx context.Context, args []string) error {
	var isbn, cardID string

	fs := newFlagSet("checkout")
	fs.StringVar(&isbn, "isbn", "", "")
	fs.StringVar(&cardID, "card", "", "")

	if err := parse(fs, args); err != nil {
		return err
	}

	receipt, err := a.loans.Checkout(ctx, isbn, cardID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Book checked out successfully. Loan ID: %d, due %s\n",
		receipt.LoanID, receipt.DateDue.Format("2006-01-02"))

	return nil
}

func (a *app) checkin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: checkin needs at least one loan id", errUsage)
	}

	ids := make([]int64, 0, len(args))

	for _, s := range args {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			return domain.ErrInvalidLoanID
		}

		ids = append(ids, id)
	}

	n, err := a.loans.Checkin(ctx, ids)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Successfully checked in %d book(s).\n", n)

	return nil
}

func (a *app) listLoans(ctx context.Context, args []string) error {
	var isbn, cardID string

	fs := newFlagSet("loans")
	fs.StringVar(&isbn, "isbn", "", "")
	fs.StringVar(&cardID, "card", "", "")

	if err := parse(fs, args); err != nil {
		return err
	}

	switch {
	case isbn != "":
		loan, err := a.loans.OpenLoanByISBN(ctx, isbn)
		if err != nil {
			return err
		}

		return a.print(loan)
	case cardID != "":
		loans, err := a.loans.ListOpen(ctx, cardID)
		if err != nil {
			return err
		}

		return a.print(loans)
	default:
		loans, err := a.loans.SearchOpen(ctx, fs.Arg(0))
		if err != nil {
			return err
		}

		return a.print(loans)
	}
}

func (a *app) finesCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: fines needs a subcommand", errUsage)
	}

	switch args[0] {
	case "update":
		stats, err := a.fines.Reconcile(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(a.stdout, "Fines updated: %d processed, %d new, %d updated, %d skipped (paid)\n",
			stats.Processed, stats.New, stats.Updated, stats.SkippedPaid)

		return a.unpaid(ctx)
	case "unpaid":
		return a.unpaid(ctx)
	case "show":
		var all bool

		fs := newFlagSet("fines show")
		fs.BoolVar(&all, "all", false, "")

		if err := parse(fs, args[1:]); err != nil {
			return err
		}

		cardID, err := oneArg("fines show", fs.Args())
		if err != nil {
			return err
		}

		fines, err := a.fines.BorrowerFines(ctx, cardID, all)
		if err != nil {
			return err
		}

		return a.print(fines)
	default:
		return fmt.Errorf("%w: unknown fines subcommand %q", errUsage, args[0])
	}
}

func (a *app) unpaid(ctx context.Context) error {
	summary, err := a.fines.AllUnpaidSummary(ctx)
	if err != nil {
		return err
	}

	return a.print(summary)
}

func (a *app) pay(ctx context.Context, args []string) error {
	cardID, err := oneArg("pay", args)
	if err != nil {
		return err
	}

	paid, err := a.fines.Settle(ctx, cardID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Payment of $%s processed successfully.\n", paid.StringFixed(2))

	return nil
}

func (a *app) systemSummary(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: summary takes no arguments", errUsage)
	}

	summary, err := a.summary.SystemSummary(ctx)
	if err != nil {
		return err
	}

	return a.print(summary)
}
