package main

// Parse and score a resume from the command line:
//   go run ./cmd/scoredemo -in resume.txt -jd jd.txt

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Dhruv40689/resume-builder/internal/ats"
	"github.com/Dhruv40689/resume-builder/internal/parser"
)

func main() {
	inPath := flag.String("in", "", "path to resume text file")
	jdPath := flag.String("jd", "", "optional path to job description text file")
	role := flag.String("role", "", "optional target role")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "usage: scoredemo -in resume.txt [-jd jd.txt] [-role title]")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read resume: %v\n", err)
		os.Exit(1)
	}

	jobDescription := ""
	if *jdPath != "" {
		jd, err := os.ReadFile(*jdPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read job description: %v\n", err)
			os.Exit(1)
		}
		jobDescription = string(jd)
	}

	p, err := parser.ExtractProfile(string(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse resume: %v\n", err)
		os.Exit(1)
	}

	report := ats.Score(p, ats.Options{
		JobDescription: jobDescription,
		TargetRole:     *role,
	})

	out, err := json.MarshalIndent(map[string]any{
		"profile": p,
		"report":  report,
	}, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
