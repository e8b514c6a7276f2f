package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alertdash/alertdash/internal/config"
	"github.com/alertdash/alertdash/internal/dispatch"
	"github.com/alertdash/alertdash/internal/logger"
	"github.com/alertdash/alertdash/internal/mail"
	"github.com/alertdash/alertdash/internal/recipients"
)

var rootCmd = &cobra.Command{
	Use:   "alertctl",
	Short: "Admin tool for the alertdash recipient list and alert dispatch",
}

var recipientsCmd = &cobra.Command{
	Use:   "recipients",
	Short: "Manage the recipient list",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the current recipient list",
	RunE:  runList,
}

var addCmd = &cobra.Command{
	Use:   "add [address]",
	Short: "Add an address to the recipient list",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var removeCmd = &cobra.Command{
	Use:   "remove [address]",
	Short: "Remove an address from the recipient list",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the entire recipient list",
	RunE:  runClear,
}

var sendCmd = &cobra.Command{
	Use:   "send [message]",
	Short: "Send an alert to every recipient",
	Args:  cobra.ExactArgs(1),
	RunE:  runSend,
}

func init() {
	recipientsCmd.AddCommand(listCmd)
	recipientsCmd.AddCommand(addCmd)
	recipientsCmd.AddCommand(removeCmd)
	recipientsCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(recipientsCmd)
	rootCmd.AddCommand(sendCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getStore() (*recipients.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New("warn", "console")
	return recipients.NewStore(cfg.Recipients.File, log), cfg, nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, _, err := getStore()
	if err != nil {
		return err
	}

	addrs := store.Load()
	if len(addrs) == 0 {
		fmt.Println("No recipients configured.")
		return nil
	}
	for _, addr := range addrs {
		fmt.Println(addr)
	}
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, _, err := getStore()
	if err != nil {
		return err
	}

	updated, err := store.Add(args[0], store.Load())
	if err != nil {
		return err
	}
	if err := store.Save(updated); err != nil {
		return fmt.Errorf("failed to save recipient list: %w", err)
	}
	fmt.Printf("Added %s (%d recipients)\n", args[0], len(updated))
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	store, _, err := getStore()
	if err != nil {
		return err
	}

	updated, err := store.Remove(args[0], store.Load())
	if err != nil {
		return err
	}
	if err := store.Save(updated); err != nil {
		return fmt.Errorf("failed to save recipient list: %w", err)
	}
	fmt.Printf("Removed %s (%d recipients)\n", args[0], len(updated))
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	store, _, err := getStore()
	if err != nil {
		return err
	}

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("Recipient list deleted.")
	return nil
}

func runSend(cmd *cobra.Command, args []string) error {
	store, cfg, err := getStore()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New("warn", "console")
	sender := mail.NewSMTPSender(cfg.Mail, log)
	dispatcher := dispatch.NewDispatcher(store, sender, log)

	count, err := dispatcher.Send(context.Background(), args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Alert sent to %d recipient(s).\n", count)
	return nil
}
