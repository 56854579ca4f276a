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

package action

import (
	"errors"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

var errEmptyURI = errors.New("empty URI")

// NormalizeURI brings a URI into a canonical form.
//
// A missing scheme is replaced by "http" for URIs which start with a host
// name, and by "mailto" for URIs which look like an e-mail address.
// The scheme is converted to lower case and internationalized host names
// are converted to their ASCII form.
func NormalizeURI(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errEmptyURI
	}

	if !strings.Contains(s, ":") || strings.HasPrefix(s, "www.") {
		if strings.Contains(s, "@") && !strings.Contains(s, "/") {
			s = "mailto:" + s
		} else {
			s = "http://" + s
		}
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", err
	}
	u.Scheme = strings.ToLower(u.Scheme)

	if host := u.Hostname(); host != "" {
		ascii, err := idna.Lookup.ToASCII(host)
		if err != nil {
			return "", err
		}
		if port := u.Port(); port != "" {
			u.Host = ascii + ":" + port
		} else {
			u.Host = ascii
		}
	}
	return u.String(), nil
}
