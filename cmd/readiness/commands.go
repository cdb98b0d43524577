// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lighthouse-sre/readiness/pkg/ux"
	"github.com/lighthouse-sre/readiness/services/orchestrator/datatypes"
)

var (
	flagName        string
	flagDescription string
	flagImpact      string
	flagFormat      string
	flagJSON        bool
)

// serverURL resolves the orchestrator address.
func serverURL() string {
	if v := os.Getenv("READINESS_SERVER_URL"); v != "" {
		return v
	}
	return "http://localhost:12300"
}

var rootCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Production readiness reviews from architecture diagrams",
	Long: `readiness drives the review pipeline: upload an architecture diagram,
analyze it with a vision model, derive a chaos testing plan, and compose
a production readiness review document.`,
	SilenceUsage: true,
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check connectivity with the readiness server",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(serverURL())
		msg, err := client.Ping(cmd.Context())
		if err != nil {
			ux.Failure("Server unreachable: " + err.Error())
			return err
		}
		ux.Success(msg)
		return nil
	},
}

var reviewCmd = &cobra.Command{
	Use:   "review <diagram>",
	Short: "Run the full readiness review pipeline on a diagram",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metadata := datatypes.ProjectMetadata{
			Name:           flagName,
			Description:    flagDescription,
			BusinessImpact: flagImpact,
		}
		if err := metadata.Validate(); err != nil {
			ux.Failure("Missing metadata: provide --name, --description and --impact")
			return err
		}

		client := newAPIClient(serverURL())
		ctx := cmd.Context()

		ux.Title("Readiness review: " + metadata.Name)

		ux.Step("Uploading diagram " + args[0])
		fileID, err := client.UploadDiagram(ctx, args[0])
		if err != nil {
			ux.Failure("Upload failed: " + err.Error())
			return err
		}
		ux.Detail("file " + fileID)

		ux.Step("Analyzing system architecture")
		analysisID, analysis, err := client.AnalyzeSystem(ctx, fileID, metadata)
		if err != nil {
			ux.Failure("Analysis failed: " + err.Error())
			return err
		}
		ux.Detail(fmt.Sprintf("%d components, tier %s", len(analysis.Components), analysis.AvailabilityTier))

		ux.Step("Generating chaos testing plan")
		planID, plan, err := client.AnalyzeDestructiveTests(ctx, analysisID, metadata)
		if err != nil {
			ux.Failure("Chaos plan generation failed: " + err.Error())
			return err
		}
		ux.Detail(fmt.Sprintf("%d experiments", len(plan.Experiments.Items)))

		ux.Step("Composing PRR document")
		documentID, document, err := client.GeneratePRR(ctx, analysisID, planID, metadata)
		if err != nil {
			ux.Failure("PRR generation failed: " + err.Error())
			return err
		}

		if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"documentId": documentID,
				"document":   document,
			})
		}

		ux.Success("Review complete: " + document.Title)
		for _, section := range document.Sections {
			ux.Detail(string(ux.IconBullet) + " " + section.Title)
		}
		fmt.Println("document id:", documentID)
		return nil
	},
}

var downloadCmd = &cobra.Command{
	Use:   "download <documentId>",
	Short: "Resolve the download URL for a PRR document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(serverURL())
		docURL, err := client.DownloadPRR(cmd.Context(), args[0], flagFormat)
		if err != nil {
			ux.Failure("Download failed: " + err.Error())
			return err
		}
		fmt.Println(docURL)
		return nil
	},
}

func init() {
	reviewCmd.Flags().StringVar(&flagName, "name", "", "project name")
	reviewCmd.Flags().StringVar(&flagDescription, "description", "", "project description")
	reviewCmd.Flags().StringVar(&flagImpact, "impact", "", "business impact (low, medium, high)")
	reviewCmd.Flags().BoolVar(&flagJSON, "json", false, "emit the PRR document as JSON")

	downloadCmd.Flags().StringVar(&flagFormat, "format", "pdf", "document format (pdf or docx)")

	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(downloadCmd)
}
