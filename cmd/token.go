// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

var (
	tokenSecret   string
	tokenUserID   int64
	tokenEmail    string
	tokenLifetime time.Duration
)

// tokenCmd mints a user session token for local development. The
// secret must match the server's AUTH_SECRET.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a user session token for development",
	Run: func(cmd *cobra.Command, args []string) {
		codec := authentication.NewTokenCodec([]byte(tokenSecret), 0)

		token, err := codec.IssueUserToken(&authentication.UserSession{
			UserID:    tokenUserID,
			Email:     tokenEmail,
			ExpiresAt: time.Now().Add(tokenLifetime),
		})
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}

		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "Signing secret")
	tokenCmd.Flags().Int64Var(&tokenUserID, "user-id", 1, "User ID")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "User email")
	tokenCmd.Flags().DurationVar(&tokenLifetime, "lifetime", time.Hour, "Token lifetime")

	_ = tokenCmd.MarkFlagRequired("secret")
	_ = tokenCmd.MarkFlagRequired("email")
}
