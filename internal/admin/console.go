package admin

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/bagdasarian/club-shop/internal/service"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrUnknownCommand - подкоманда не зарегистрирована
var ErrUnknownCommand = errors.New("unknown command")

// Services - сервисы, доступные административной консоли.
// Консоль работает через те же сервисы, что и HTTP API.
type Services struct {
	Teams      service.TeamService
	Members    service.MemberService
	Categories service.CategoryService
	Products   service.ProductService
	Orders     service.OrderService
	Payments   service.PaymentService
	Settings   service.SettingsService
}

// Console выполняет административные подкоманды и пишет результат в out
type Console struct {
	svc Services
	out io.Writer
	log logrus.FieldLogger
}

func NewConsole(svc Services, out io.Writer, log logrus.FieldLogger) *Console {
	return &Console{
		svc: svc,
		out: out,
		log: log,
	}
}

// Run выполняет подкоманду args[0] с флагами args[1:].
// Дерево команд строится на каждый вызов, чтобы значения флагов не переживали запуск.
func (c *Console) Run(ctx context.Context, args []string) error {
	root := c.rootCommand()
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (c *Console) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Club shop administration",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.log.WithField("command", cmd.Name()).Debug("running admin command")
		},
	}
	root.SetOut(c.out)
	root.SetErr(c.out)

	root.AddCommand(
		c.completePaymentCommand(),
		c.initSettingsCommand(),
		c.setMarginCommand(),
		c.repriceCommand(),
		c.createProductCommand(),
		c.updateProductCommand(),
		c.addItemCommand(),
		c.updateItemCommand(),
		c.deleteItemCommand(),
		c.deleteCommand("product", c.svc.Products.DeleteProduct),
		c.deleteCommand("order", c.svc.Orders.DeleteOrder),
		c.deleteCommand("team", c.svc.Teams.DeleteTeam),
		c.deleteCommand("member", c.svc.Members.DeleteMember),
		c.deleteCommand("category", c.svc.Categories.DeleteCategory),
	)

	return root
}

func (c *Console) completePaymentCommand() *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "complete-payment",
		Short: "Complete a pending payment and credit the member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requirePositive("id", id); err != nil {
				return err
			}

			payment, outcome, err := c.svc.Payments.CompletePayment(cmd.Context(), id)
			if err != nil {
				return err
			}

			if outcome == domain.CompletionAlreadyDone {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: payment %d is already completed, balance unchanged\n", payment.ID)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "payment %d completed: %s credited to member %d\n",
				payment.ID, payment.Amount.StringFixed(2), payment.MemberID)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "payment id")
	return cmd
}

func (c *Console) initSettingsCommand() *cobra.Command {
	margin := decimalFlag{}
	cmd := &cobra.Command{
		Use:   "init-settings",
		Short: "Create the settings row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !margin.set {
				return domain.NewValidationError("--margin is required")
			}

			settings, err := c.svc.Settings.InitSettings(cmd.Context(), margin.value)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "settings created: margin %s%%\n", settings.MarginPercent.String())
			return nil
		},
	}
	cmd.Flags().Var(&margin, "margin", "margin percent")
	return cmd
}

func (c *Console) setMarginCommand() *cobra.Command {
	margin := decimalFlag{}
	cmd := &cobra.Command{
		Use:   "set-margin",
		Short: "Change the margin and reprice the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !margin.set {
				return domain.NewValidationError("--margin is required")
			}

			repriced, err := c.svc.Settings.SetMargin(cmd.Context(), margin.value)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "margin set to %s%%, %d product(s) repriced\n", margin.value.String(), repriced)
			return nil
		},
	}
	cmd.Flags().Var(&margin, "margin", "margin percent")
	return cmd
}

func (c *Console) repriceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reprice",
		Short: "Recalculate the price of every product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repriced, err := c.svc.Products.RepriceAll(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d product(s) repriced\n", repriced)
			return nil
		},
	}
}

func (c *Console) deleteCommand(entity string, del func(ctx context.Context, id int64) error) *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "delete-" + entity,
		Short: "Delete a " + entity,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requirePositive("id", id); err != nil {
				return err
			}

			if err := del(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d deleted\n", entity, id)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, entity+" id")
	return cmd
}

func requirePositive(name string, value int64) error {
	if value <= 0 {
		return domain.NewValidationError("--%s must be a positive integer", name)
	}
	return nil
}

// decimalFlag - pflag.Value для денежных и процентных значений
type decimalFlag struct {
	value decimal.Decimal
	set   bool
}

func (f *decimalFlag) String() string {
	return f.value.String()
}

func (f *decimalFlag) Set(raw string) error {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid decimal %q", raw)
	}
	f.value = d
	f.set = true
	return nil
}

func (f *decimalFlag) Type() string {
	return "decimal"
}
