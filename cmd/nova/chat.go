package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/novalabs/go-nova/pkg/assistant"
)

var speakResponses bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive text REPL",
	Long: `Chat with Nova from the terminal. The wake word is optional in text
mode: "what time is it" and "nova what time is it" both work. Say goodbye
to end the session.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&speakResponses, "speak", false, "speak responses aloud")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dispatcher := buildDispatcher(cfg)

	var opts []assistant.SessionOption
	if speakResponses {
		if speaker := buildSpeaker(cfg); speaker != nil {
			defer speaker.Close()
			opts = append(opts, assistant.WithVoice(speaker))
		}
	}
	session := assistant.NewSession(dispatcher, opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		fmt.Println("\nNova:", assistant.ReplySigningOff)
		os.Exit(0)
	}()

	fmt.Println("Nova:", session.Greeting())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}

		result, ok := session.Submit(ctx, strings.TrimSpace(scanner.Text()))
		if !ok {
			break
		}
		fmt.Println("Nova:", result.Text)
		if result.Terminate {
			break
		}
	}
	return scanner.Err()
}
