package banner

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/EZCampusDevs/dataScraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var restrictionGroupRegex = regexp.MustCompile(`(?i)^(must|cannot)\s*be.*following\s*([^:]+):?$`)
var restrictionSpecialRegex = regexp.MustCompile(`(?i)^special approvals:$`)

func emptyRestrictions() map[string][]RestrictionValue {
	return map[string][]RestrictionValue{
		"levels":  {},
		"degrees": {},
	}
}

// Restrictions fetches and parses the registration restriction
// fragment for one section. The fragment is a flat run of spans:
// a group header ("Must be enrolled in one of the following Levels:")
// followed by indented value spans belonging to it. Failures are soft
// and yield the empty two-key structure.
func (c *Client) Restrictions(ctx context.Context, term, crn string) map[string][]RestrictionValue {
	ctx, span := tracer.Start(ctx, "Restrictions")
	defer span.End()

	c.EnsureTermAuth(ctx, false)

	res := c.transport.Do(ctx, http.MethodGet, c.endpoint(
		"/StudentRegistrationSsb/ssb/searchResults/getRestrictions?term=%s&courseReferenceNumber=%s",
		url.QueryEscape(term), url.QueryEscape(crn),
	), RequestOptions{})
	if res == nil {
		slog.WarnContext(ctx, "restriction request got no response",
			"host", c.profile.Hostname,
			"crn", crn,
		)
		return emptyRestrictions()
	}
	if res.StatusCode() != http.StatusOK {
		return emptyRestrictions()
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		slog.WarnContext(ctx, "restriction fragment was not parseable html",
			"crn", crn,
			"err", err,
		)
		return emptyRestrictions()
	}

	return parseRestrictions(ctx, doc)
}

func parseRestrictions(ctx context.Context, doc *goquery.Document) map[string][]RestrictionValue {
	restrictions := map[string][]RestrictionValue{}
	var current string
	haveGroup := false
	mustBeIn := false

	for _, node := range doc.Find("span").Nodes {
		text := strings.TrimSpace(htmlutil.GetText(node))

		if m := restrictionGroupRegex.FindStringSubmatch(text); m != nil {
			mustBeIn = strings.EqualFold(m[1], "must")
			current = strings.ToLower(strings.TrimSpace(m[2]))
			haveGroup = true
			if _, ok := restrictions[current]; !ok {
				restrictions[current] = []RestrictionValue{}
			}
			continue
		}
		if restrictionSpecialRegex.MatchString(text) {
			current = "special"
			haveGroup = true
			mustBeIn = true
			if _, ok := restrictions[current]; !ok {
				restrictions[current] = []RestrictionValue{}
			}
			continue
		}
		if haveGroup && htmlutil.HasClass(node, "detail-popup-indentation") {
			restrictions[current] = append(restrictions[current], RestrictionValue{
				Value:    text,
				MustBeIn: mustBeIn,
			})
			continue
		}
		if text == "Not all restrictions are applicable." {
			continue
		}

		slog.WarnContext(ctx, "unknown span while parsing restrictions", "text", text)
	}

	return restrictions
}
