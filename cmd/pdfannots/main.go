// seehuhn.de/go/pdfdom - a page-level document model for PDF engines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Pdfannots lists the annotations and links of a PDF file.
//
// Usage:
//
//	pdfannots [-p password] [-v] [-note x,y,text -page n -o out.pdf] file.pdf
//
// With the -note option, a text note is added at the given position on the
// selected page, and the modified document is written to the file given
// by -o.  Coordinates use a top-left origin, in PDF units.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"seehuhn.de/go/pdfdom"
	"seehuhn.de/go/pdfdom/action"
	"seehuhn.de/go/pdfdom/annotation"
	"seehuhn.de/go/pdfdom/coord"
	"seehuhn.de/go/pdfdom/engine/cpuengine"
)

func main() {
	passwdArg := flag.String("p", "", "PDF password")
	verbose := flag.Bool("v", false, "log debug messages")
	noteArg := flag.String("note", "", "add a text note `x,y,text`")
	pageArg := flag.Int("page", 1, "page for the new note (1-based)")
	outArg := flag.String("o", "", "output file for the modified document")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pdfannots [options] file.pdf")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *noteArg != "" && *outArg == "" {
		log.Fatal("-note requires -o")
	}

	tryPasswd := func(try int) string {
		if *passwdArg != "" && try == 0 {
			return *passwdArg
		}
		fmt.Print("password: ")
		passwd, err := term.ReadPassword(syscall.Stdin)
		fmt.Println("***")
		if err != nil {
			log.Fatal(err)
		}
		return string(passwd)
	}

	opt := &pdfdom.Options{
		ReadPassword:  tryPasswd,
		NormalizeURIs: true,
	}
	if *verbose {
		opt.Logger = slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	doc, err := pdfdom.Open(cpuengine.New(), flag.Arg(0), opt)
	if err != nil {
		log.Fatal(err)
	}
	defer doc.Close()

	if *noteArg != "" {
		err = addNote(doc, *pageArg-1, *noteArg)
		if err != nil {
			log.Fatal(err)
		}
		err = doc.Save(*outArg)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	err = show(doc)
	if err != nil {
		log.Fatal(err)
	}
}

func show(doc *pdfdom.Document) error {
	props := doc.Properties()
	fmt.Printf("PDF-%d.%d, %d pages\n", props.Version/10, props.Version%10, doc.PageCount())
	if props.Title != "" {
		fmt.Println("Title:", props.Title)
	}
	if props.Author != "" {
		fmt.Println("Author:", props.Author)
	}
	if props.Producer != "" {
		fmt.Println("Producer:", props.Producer)
	}
	if props.Encrypted {
		fmt.Println("encrypted")
	}

	ol, err := doc.Outline()
	if err != nil {
		return err
	}
	if ol != nil {
		fmt.Println()
		err = ol.Write(os.Stdout)
		if err != nil {
			return err
		}
	}

	for i := range doc.PageCount() {
		page, err := doc.Page(i)
		if err != nil {
			return err
		}
		annots := page.Annotations()
		if len(annots) == 0 {
			continue
		}

		label := page.Label()
		if label == "" {
			label = strconv.Itoa(i + 1)
		}
		fmt.Printf("\npage %s:\n", label)
		for _, a := range annots {
			fmt.Printf("  %-9s %s", a.Kind(), a.Boundary())
			switch a := a.(type) {
			case *annotation.Link:
				fmt.Printf("  -> %s", describe(a.Action))
			case *annotation.Unknown:
				fmt.Printf("  (%s)", a.Subtype)
			default:
				if s := annotation.Contents(a); s != "" {
					fmt.Printf("  %q", s)
				}
			}
			fmt.Println()
		}
	}
	return nil
}

func describe(a action.Action) string {
	switch a := a.(type) {
	case *action.GoTo:
		return a.Dest.String()
	case *action.GoToR:
		return a.FilePath + " " + a.Dest.String()
	case *action.URI:
		return a.URI
	case *action.Launch:
		return "launch " + a.FilePath
	case nil:
		return "nowhere"
	default:
		return string(a.ActionType())
	}
}

// addNote parses a note description of the form "x,y,text" and adds
// the note to the given page.
func addNote(doc *pdfdom.Document, pageNo int, desc string) error {
	parts := strings.SplitN(desc, ",", 3)
	if len(parts) != 3 {
		return errors.New("note must have the form x,y,text")
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return err
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return err
	}

	page, err := doc.Page(pageNo)
	if err != nil {
		return err
	}
	note := &annotation.Text{
		Pos:      coord.Point{X: x, Y: y},
		Contents: parts[2],
	}
	_, err = page.CreateAnnotation(note)
	return err
}
