package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spec-kit/residence-registry/internal/api/dto"
	"github.com/spec-kit/residence-registry/internal/client"
	"github.com/spec-kit/residence-registry/internal/config"
	"github.com/spec-kit/residence-registry/internal/observability"
)

// consoleNotifier prints transient notifications where the original UI
// showed toasts.
type consoleNotifier struct{}

func (consoleNotifier) Success(message string) { fmt.Println("[ok] " + message) }
func (consoleNotifier) Error(message string)   { fmt.Println("[!!] " + message) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	api := client.NewAPIClient(cfg.Client.BaseURL, &http.Client{Timeout: cfg.Client.Timeout()})
	controller := client.NewController(api, consoleNotifier{}, logger, client.Options{
		ServerAuth: cfg.Auth.EnforceRoles,
	})

	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	fmt.Println("Brgy Dona Josefa Residence Record")
	for !controller.Session().LoggedIn {
		username := prompt(scanner, "Username")
		password := prompt(scanner, "Password")
		_ = controller.Login(ctx, username, password)
	}

	printHelp(controller.CanMutate())
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		cmd, arg, _ := strings.Cut(line, " ")

		switch cmd {
		case "list":
			renderTable(controller.Filtered(""), controller.CanMutate())
		case "search":
			renderTable(controller.Filtered(strings.TrimSpace(arg)), controller.CanMutate())
		case "add":
			if !controller.CanMutate() {
				fmt.Println("admin role required")
				continue
			}
			controller.SetDraft(promptResident(scanner, dto.ResidentPayload{}, false))
			_ = controller.SubmitDraft(ctx)
		case "edit":
			if !controller.CanMutate() {
				fmt.Println("admin role required")
				continue
			}
			record, ok := findRecord(controller.Records(), strings.TrimSpace(arg))
			if !ok {
				fmt.Println("no such resident in the current list")
				continue
			}
			controller.BeginEdit(record)
			controller.SetDraft(promptResident(scanner, controller.Draft(), true))
			_ = controller.SubmitDraft(ctx)
		case "delete":
			if !controller.CanMutate() {
				fmt.Println("admin role required")
				continue
			}
			_ = controller.RemoveRecord(ctx, strings.TrimSpace(arg))
		case "refresh":
			controller.Refresh(ctx)
			renderTable(controller.Records(), controller.CanMutate())
		case "logout":
			controller.Logout()
			return
		case "quit", "exit":
			return
		case "help":
			printHelp(controller.CanMutate())
		default:
			if cmd != "" {
				fmt.Println("unknown command; try 'help'")
			}
		}
	}
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label + ": ")
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// promptResident walks the registration form fields. During an edit the id
// field is locked, mirroring the disabled input on the original form.
func promptResident(scanner *bufio.Scanner, draft dto.ResidentPayload, editing bool) dto.ResidentPayload {
	ask := func(label, current string) string {
		suffix := ""
		if current != "" {
			suffix = " [" + current + "]"
		}
		value := prompt(scanner, label+suffix)
		if value == "" {
			return current
		}
		return value
	}

	if !editing {
		draft.ID = ask("ID", draft.ID)
	}
	draft.Title = ask("Title (Mr./Mrs./Ms.)", draft.Title)
	draft.Name = ask("Name", draft.Name)
	draft.Suffix = ask("Suffix (None/Jr./Sr./III)", draft.Suffix)
	draft.Sex = ask("Sex", draft.Sex)
	draft.Birthday = ask("Birthday (YYYY-MM-DD)", draft.Birthday)
	draft.Age = ask("Age", draft.Age)
	draft.PostalCode = ask("Postal Code", draft.PostalCode)
	draft.Citizenship = ask("Citizenship", draft.Citizenship)
	draft.CivilStatus = ask("Civil Status", draft.CivilStatus)
	draft.Course = ask("Occupation", draft.Course)
	draft.Address = ask("Address", draft.Address)
	return draft
}

func findRecord(records []dto.ResidentPayload, id string) (dto.ResidentPayload, bool) {
	for _, record := range records {
		if record.ID == id {
			return record, true
		}
	}
	return dto.ResidentPayload{}, false
}

func renderTable(records []dto.ResidentPayload, admin bool) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTitle\tName\tSuffix\tSex\tBirthday\tAge\tPostal\tCitizenship\tCivil Status\tOccupation\tAddress")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Title, r.Name, r.Suffix, r.Sex, r.Birthday, r.Age,
			r.PostalCode, r.Citizenship, r.CivilStatus, r.Course, r.Address)
	}
	w.Flush()
	if !admin {
		fmt.Println("(read-only)")
	}
}

func printHelp(admin bool) {
	fmt.Println("commands: list, search <term>, refresh, logout, quit")
	if admin {
		fmt.Println("admin:    add, edit <id>, delete <id>")
	}
}
