package fixture

// SampleChrome is a short search-and-browse session: nine visits over six
// urls, recorded on 2021-11-11 between 11:20 and 11:23 UTC.
func SampleChrome() []ChromeURL {
	return []ChromeURL{
		{
			URL:        "https://www.google.com/search?q=best+python+security+course",
			Title:      "best python security course - Google Search",
			TypedCount: 1,
			Visits: []ChromeVisit{
				{Time: 13281103239598576, Transition: 805306369},
				{Time: 13281103240781536, FromVisit: 1, Transition: 268435457},
			},
		},
		{
			URL:   "https://www.udemy.com/topic/python-security/",
			Title: "Top Python Security Courses Online",
			Visits: []ChromeVisit{
				{Time: 13281103273023556, FromVisit: 2, Transition: 805306368},
			},
		},
		{
			URL:   "https://www.sans.org/cyber-security-courses/automating-information-security-with-python/",
			Title: "SEC573: Automating Information Security with Python",
			Visits: []ChromeVisit{
				{Time: 13281103276156828, FromVisit: 2, Transition: 805306368},
			},
		},
		{
			URL:    "https://www.sans.org/latest/cyber-security-courses/",
			Title:  "",
			Hidden: true,
			Visits: []ChromeVisit{
				{Time: 13281103276156828, FromVisit: 4, Transition: 805306374},
			},
		},
		{
			URL:   "https://www.sans.org/cyber-security-courses/automating-information-security-with-python/#course-details",
			Title: "SEC573: Automating Information Security with Python",
			Visits: []ChromeVisit{
				{Time: 13281103276156828, FromVisit: 4, Transition: 805306368},
				{Time: 13281103300921122, FromVisit: 6, Transition: 805306368},
				{Time: 13281103300925808, FromVisit: 7, Transition: 805306368},
			},
		},
		{
			URL:   "https://www.douglashollis.com/best-python-security-courses/",
			Title: "Best Python Security Courses",
			Visits: []ChromeVisit{
				{Time: 13281103354307613, FromVisit: 2, Transition: 805306368},
			},
		},
	}
}

// SampleFirefox is a SANS login flow recorded on 2021-05-15 around 08:01
// UTC, plus one bookmarked place that was never visited.
func SampleFirefox() []Place {
	return []Place{
		{URL: "http://www.sans.org/", Title: "SANS", VisitCount: 1, LastVisitDate: At(1621065670772497), Frecency: 100},
		{URL: "https://www.sans.org/", Title: "SANS Institute", VisitCount: 1, LastVisitDate: At(1621065670871628), Frecency: 2000},
		{URL: "https://www.sans.org/account/login", Title: "Log in", VisitCount: 1, LastVisitDate: At(1621065674508394), Frecency: 100},
		{URL: "https://www.sans.org/account/loginsso", Title: "SSO", VisitCount: 2, LastVisitDate: At(1621065693163270), Frecency: 200},
		{URL: "https://idp.sans.org/simplesaml/saml2/idp/SSOService.php", Title: "", VisitCount: 1, LastVisitDate: At(1621065675093349), Frecency: 100},
		{URL: "https://www.mozilla.org/firefox/", Title: "Firefox", VisitCount: 0, Frecency: -1},
	}
}
