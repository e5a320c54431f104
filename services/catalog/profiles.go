package catalog

import (
	"github.com/EZCampusDevs/dataScraper/lib/scrapers/banner"
)

// the registration backends are flaky enough that giving up on a
// connect failure loses whole institutions, so the builtin profiles
// retry forever and rely on the per-call timeout instead
var retryForever = -1

// BuiltinProfiles returns the institutions the scraper knows out of
// the box. Operators can extend or override the list through config.
func BuiltinProfiles() []banner.Profile {
	return []banner.Profile{
		{
			Name:      "Ontario Tech University - Canada",
			Subdomain: "otu",
			Hostname:  "ssp.mycampus.ca",
			MepCode:   "UOIT",
			Timezone:  "America/Toronto",
			Retries:   &retryForever,
		},
		{
			Name:      "University of Victoria - Canada",
			Subdomain: "uv",
			Hostname:  "banner.uvic.ca",
			MepCode:   "UVIC",
			Timezone:  "America/Vancouver",
			Retries:   &retryForever,
		},
		{
			Name:      "Durham College - Canada",
			Subdomain: "dc",
			Hostname:  "ssp.mycampus.ca",
			MepCode:   "DC",
			Timezone:  "America/Toronto",
			Retries:   &retryForever,
		},
		{
			Name:      "Texas Tech University - USA",
			Subdomain: "ttu",
			Hostname:  "registration.texastech.edu",
			MepCode:   "TTU",
			Timezone:  "America/Chicago",
			Retries:   &retryForever,
		},
		{
			Name:      "Red Deer Polytechnic - Canada",
			Subdomain: "rdp",
			Hostname:  "myinfo.rdc.ab.ca",
			Timezone:  "America/Edmonton",
			Retries:   &retryForever,
		},
		{
			Name:      "Okanagan College - Canada",
			Subdomain: "oc",
			Hostname:  "selfservice.okanagan.bc.ca",
			Timezone:  "America/Vancouver",
			Retries:   &retryForever,
		},
		{
			// seems to have issues with 400 errors sometimes
			Name:      "Thompson Rivers University - Canada",
			Subdomain: "tru",
			Hostname:  "reg-prod.ec.tru.ca",
			Timezone:  "America/Vancouver",
			Retries:   &retryForever,
		},
		{
			Name:      "Kwantlen Polytechnic University - Canada",
			Subdomain: "kpu",
			Hostname:  "banweb3.kpu.ca",
			Timezone:  "America/Vancouver",
			Retries:   &retryForever,
		},
		{
			Name:      "University of Saskatchewan - Canada",
			Subdomain: "uos",
			Hostname:  "banner.usask.ca",
			Timezone:  "America/Regina",
			Retries:   &retryForever,
		},
		{
			Name:      "Yukon University - Canada",
			Subdomain: "yu",
			Hostname:  "banner.yukonu.ca",
			Timezone:  "America/Whitehorse",
			Retries:   &retryForever,
		},
	}
}

// SelectProfiles filters profiles down to the named subdomains,
// preserving order. An empty selection keeps everything.
func SelectProfiles(profiles []banner.Profile, subdomains []string) []banner.Profile {
	if len(subdomains) == 0 {
		return profiles
	}
	wanted := map[string]bool{}
	for _, s := range subdomains {
		wanted[s] = true
	}
	var out []banner.Profile
	for _, p := range profiles {
		if wanted[p.Subdomain] {
			out = append(out, p)
		}
	}
	return out
}
