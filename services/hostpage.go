package services

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"listings-crawler/utils"
)

// hostSectionLabels are tried in order; the first section whose text
// contains the label wins.
var hostSectionLabels = []string{"Hôte", "Votre hôte"}

// HostProfileMarker identifies anchors pointing at a host profile page.
const HostProfileMarker = "/users/"

// HostInfo is what the host region of a rendered listing page yields.
// SectionText is empty when no host section could be located.
type HostInfo struct {
	SectionText string
	Name        string
	ProfileURL  string
}

// ExtractHostInfo parses the rendered document HTML and pulls out the host
// section text, the host display name and the normalized host profile URL.
// When the section heuristic fails on a page-layout variant, the first
// profile anchor anywhere on the page supplies name and URL instead.
func ExtractHostInfo(htmlContent string) HostInfo {
	var info HostInfo

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return info
	}

	if section := findHostSection(doc); section != nil {
		info.SectionText = strings.TrimSpace(section.Text())

		if name := strings.TrimSpace(section.Find("h2, h3, span").First().Text()); name != "" {
			info.Name = name
		}
		if href, ok := section.Find(`a[href*="` + HostProfileMarker + `"]`).First().Attr("href"); ok && href != "" {
			info.ProfileURL = utils.StripQuery(href)
		}
	}

	if info.Name == "" || info.ProfileURL == "" {
		link := doc.Find(`a[href*="` + HostProfileMarker + `"]`).First()
		if href, ok := link.Attr("href"); ok && href != "" {
			info.ProfileURL = utils.StripQuery(href)
		}
		if text := strings.TrimSpace(link.Text()); text != "" {
			info.Name = text
		}
	}

	return info
}

func findHostSection(doc *goquery.Document) *goquery.Selection {
	for _, label := range hostSectionLabels {
		var found *goquery.Selection
		doc.Find("section").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if strings.Contains(s.Text(), label) {
				found = s
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}
