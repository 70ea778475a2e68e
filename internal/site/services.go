package site

// Highlight is a titled short paragraph.
type Highlight struct {
	Title string
	Text  string
}

// Service is one renovation service with its own detail page.
type Service struct {
	Slug        string
	Name        string
	Summary     string // one-liner for cards and related links
	Title       string // document title of the detail page
	Description string // meta description
	ServiceType string // schema.org serviceType
	Intro       []string
	Included    []string
	Focus       []Highlight
	FAQ         []FAQItem
}

// Path is the URL path of the service detail page.
func (s Service) Path() string {
	return "/tjanster/" + s.Slug
}

// Page returns the page metadata for the service detail page.
func (s Service) Page() Page {
	return Page{
		Path:        s.Path(),
		Template:    "service",
		Title:       s.Title,
		Heading:     s.Name,
		Description: s.Description,
		ChangeFreq:  ChangeMonthly,
		Priority:    0.7,
		Parent:      "/tjanster",
	}
}

var services = []Service{
	{
		Slug:        "helrenovering-badrum",
		Name:        "Helrenovering av badrum",
		Summary:     "Nyckelfärdigt badrum från golv till tak – samordnat och tydligt.",
		Title:       "Helrenovering av badrum i Sundsvall | Kostnadsfri offert",
		Description: "Helrenovering av badrum i Sundsvall. Vi förmedlar din förfrågan till lokala, kontrollerade hantverkare. Kostnadsfri offert – mål om svar inom 24h.",
		ServiceType: "Bathroom renovation",
		Intro: []string{
			"En helrenovering av badrum handlar inte bara om ytskikt och inredning – det är framför allt ett fuktsäkert byggprojekt där underarbete, tätskikt, fall mot golvbrunn och korrekt utförda installationer avgör hållbarheten över tid.",
			"För att få ett tryggt resultat behöver offerten vara tydlig: vad som ingår, vilken metod som används, vilka behörigheter som krävs för el och VVS, samt hur dokumentation och slutkontroll hanteras.",
		},
		Included: []string{
			"Rivning och bortforsling",
			"Underarbete och fallspackling vid behov",
			"Tätskikt enligt gällande branschpraxis",
			"Kakel, klinker eller våtrumsmatta (enligt val)",
			"VVS- och elarbeten via behöriga",
			"Montering av inredning och detaljer",
		},
		Focus: []Highlight{
			{"Tätskikt och detaljer", "Tätskikt, anslutningar vid brunn och genomföringar är det viktigaste i ett badrum. Be alltid om tydligt upplägg för tätskiktssystem och hur kritiska detaljer hanteras."},
			{"Behörigheter för el och VVS", "El och VVS ska göras av behöriga. Säkerställ vem som ansvarar för respektive del och att det framgår i offerten."},
			{"Tidsplan och leveranser", "Tidsplan påverkas av materialleveranser och moment som behöver torka/härda. En seriös offert beskriver etapper och vad som kan påverka tiden."},
		},
		FAQ: []FAQItem{
			{"Vad innebär en helrenovering av badrum?", "En helrenovering innebär att badrummet byggs om från grunden. Ofta ingår rivning, underarbete, tätskikt, ytskikt (t.ex. kakel/klinker), el och VVS samt montering av ny inredning. Exakt omfattning ska framgå i offerten."},
			{"Vad kostar en helrenovering av badrum i Sundsvall?", "Priset beror på storlek, materialval och omfattning. Som riktmärke ligger många helrenoveringar ungefär inom intervallen 80 000–400 000 kr beroende på kvm och val. En offert är alltid mer exakt än generella riktpriser."},
			{"Hur lång tid tar en helrenovering av badrum?", "En vanlig helrenovering tar ofta 3–6 veckor. Tidsplanen påverkas av torktider, materialleveranser, omfattning och om oväntade saker upptäcks när man river."},
			{"Hur fungerar ROT-avdrag för badrumsrenovering?", "ROT gäller normalt för arbetskostnaden (inte material). Utförande företag hanterar vanligtvis avdraget på fakturan om du uppfyller villkoren."},
		},
	},
	{
		Slug:        "tatskikt-vatrum",
		Name:        "Tätskikt & våtrum",
		Summary:     "Badrummets viktigaste skydd – rätt utförande och dokumentation.",
		Title:       "Tätskikt & våtrum i Sundsvall | Korrekt utfört tätskikt",
		Description: "Tätskikt & våtrum i Sundsvall. Rätt utfört tätskikt enligt branschregler minskar risken för fuktskador och försäkringsproblem. Kostnadsfri offert.",
		ServiceType: "Waterproofing service",
		Intro: []string{
			"Tätskikt är den viktigaste delen i ett våtrum. Det är tätskiktet som skyddar konstruktionen bakom kakel, klinker eller våtrumsmatta från fukt och vatten.",
			"Ett felaktigt eller bristfälligt tätskikt är en av de vanligaste orsakerna till vattenskador i badrum. Skadorna syns ofta först efter flera år – när det redan är för sent.",
		},
		Included: []string{
			"Bedömning av våtzoner",
			"Tätskikt enligt gällande branschpraxis",
			"Hantering av genomföringar",
			"Anslutning mot golvbrunn",
			"Kontroll före plattsättning",
			"Dokumentation och kvalitetsunderlag",
		},
		Focus: []Highlight{
			{"Våtzoner & riskområden", "Olika delar av badrummet ställer olika krav. Duschutrymme, golv och väggar nära vatten är särskilt utsatta och kräver korrekt tätskikt."},
			{"Branschpraxis & kontroll", "Tätskikt ska utföras enligt etablerad praxis. Kritiska moment är anslutning mot golvbrunn, hörn, skarvar och genomföringar."},
			{"Dokumentation", "Dokumentation visar hur arbetet utförts och vilka material som använts. Den är viktig vid framtida försäkringsärenden eller försäljning."},
		},
		FAQ: []FAQItem{
			{"Vad är tätskikt i våtrum?", "Tätskikt är ett vattentätt skydd som monteras bakom ytskikt som kakel, klinker eller våtrumsmatta. Det förhindrar att vatten tränger in i väggar och golv."},
			{"Vad är våtzon 1 och våtzon 2?", "Våtzon 1 är ytor som utsätts för direkt vatten, till exempel duschutrymme. Våtzon 2 är övriga ytor som kan utsättas för fukt."},
			{"Kan man kakla utan tätskikt?", "Nej. Kakel och klinker är inte vattentäta i sig. Utan tätskikt riskerar vatten att tränga igenom fogar och orsaka skador."},
			{"Hur påverkar tätskikt försäkringen?", "Försäkringsbolag kan kräva att tätskikt är korrekt utfört. Bristande utförande kan leda till nedsatt eller utebliven ersättning vid vattenskada."},
		},
	},
	{
		Slug:        "kakel-klinker",
		Name:        "Kakel & klinker",
		Summary:     "Plattsättning som sätter stilen – med rätt underlag, fog och halkskydd.",
		Title:       "Kakel & klinker i badrum i Sundsvall | Plattsättning",
		Description: "Kakel & klinker i badrum i Sundsvall. Vi förmedlar förfrågan till lokala plattsättare för snygga, hållbara och korrekt utförda badrum.",
		ServiceType: "Tiling service",
		Intro: []string{
			"Kakel och klinker är det som sätter både stilen och känslan i badrummet. Rätt val av plattor, mönster och fog kan göra stor skillnad – både visuellt och funktionellt.",
			"Utöver utseendet är korrekt utförd plattsättning avgörande för hållbarhet och livslängd. Felaktigt lagda plattor kan leda till sprickor, fuktproblem och onödiga kostnader.",
		},
		Included: []string{
			"Vägg- och golvplattor",
			"Mönsterläggning",
			"Golvvärme under klinker",
			"Fogning och silikon",
			"Hörnlister och avslut",
			"Noggrann plattsättning",
		},
		Focus: []Highlight{
			{"Materialval", "Val av kakel och klinker påverkar både utseende, halksäkerhet och underhåll. Olika plattor passar olika delar av badrummet."},
			{"Plattstorlek & mönster", "Stora plattor ger ett lugnt uttryck, medan mindre plattor kan passa i duschzoner. Mönsterläggning kräver extra precision."},
			{"Halkskydd", "Golvet i badrum utsätts för vatten. Klinker med rätt halkklass minskar risken för olyckor."},
		},
		FAQ: []FAQItem{
			{"Vad är skillnaden mellan kakel och klinker?", "Kakel används främst på väggar och är inte lika tåligt mot slitage. Klinker är hårdare och används oftast på golv, men kan även sättas på vägg."},
			{"Vilken plattstorlek är bäst i badrum?", "Stora plattor ger färre fogar och ett lugnt intryck, medan mindre plattor passar bra i duschytor och runt golvbrunnar."},
			{"Kan man lägga golvvärme under klinker?", "Ja, klinker är mycket lämpligt tillsammans med golvvärme och ger en behaglig temperatur i badrummet."},
			{"Hur lång tid tar plattsättning i badrum?", "Tidsåtgången beror på yta, plattstorlek och mönster. Vanligtvis tar plattsättning flera dagar inklusive torktider."},
		},
	},
	{
		Slug:        "vvs-badrum",
		Name:        "VVS i badrum",
		Summary:     "Säker rördragning och inkoppling av dusch, WC och handfat.",
		Title:       "VVS i badrum i Sundsvall | Säker rördragning & installation",
		Description: "VVS i badrum i Sundsvall. Trygg installation av rör, avlopp, dusch, WC och handfat. Vi förmedlar till behöriga VVS-installatörer. Kostnadsfri offert.",
		ServiceType: "Plumbing service",
		Intro: []string{
			"VVS-arbeten är en av de mest kritiska delarna i ett badrum. Felaktig rördragning eller dåliga kopplingar kan orsaka läckage, fuktskador och stora kostnader.",
			"Vid badrumsrenovering är det därför avgörande att VVS-installationer utförs korrekt från början, av behöriga installatörer och med tydlig dokumentation.",
		},
		Included: []string{
			"Rördragning för vatten och avlopp",
			"Installation av dusch och badkar",
			"Blandare och duschset",
			"Tvättmaskinsanslutning",
			"Provtryckning vid behov",
		},
		Focus: []Highlight{
			{"Rör & avlopp", "Vatten- och avloppsrör ska dras korrekt för att undvika läckage och säkerställa rätt fall och funktion."},
			{"Behörighet & säkerhet", "VVS-arbete i badrum ska utföras fackmässigt. Detta är avgörande för både säkerhet och försäkring."},
			{"Installation av inredning", "Dusch, WC, handfat och blandare måste installeras korrekt för lång livslängd och problemfri användning."},
		},
		FAQ: []FAQItem{
			{"Vad innebär VVS i badrum?", "VVS omfattar installation och dragning av vatten, avlopp samt inkoppling av dusch, badkar, handfat, WC och andra sanitära produkter."},
			{"Behöver man byta rör vid badrumsrenovering?", "Vid äldre badrum är det ofta rekommenderat att se över eller byta rör för att minska risken för framtida läckage."},
			{"Kan jag bo kvar under VVS-arbetet?", "Det går ibland, men tillgången till vatten och WC kan vara begränsad under arbetets gång."},
			{"Ingår material i offerten?", "Det varierar. Offerten ska tydligt specificera vad som ingår – både arbete och material."},
		},
	},
	{
		Slug:        "el-badrum",
		Name:        "El i badrum",
		Summary:     "Säker elinstallation i våtrum – belysning, uttag och golvvärme.",
		Title:       "El i badrum i Sundsvall | Säker elinstallation i våtrum",
		Description: "El i badrum i Sundsvall. Säker elinstallation i våtrum med behöriga elektriker. Belysning, eluttag, golvvärme och handdukstork. Kostnadsfri offert.",
		ServiceType: "Electrical service",
		Intro: []string{
			"El i badrum ställer höga krav på säkerhet, planering och korrekt utförande. Eftersom badrum är våtutrymmen gäller särskilda regler för hur el får installeras.",
			"Vid badrumsrenovering är det därför viktigt att all el utförs av behöriga elektriker och att installationen anpassas efter både funktion och säkerhet.",
		},
		Included: []string{
			"Elinstallation i våtrum",
			"Spotlights och badrumsbelysning",
			"Eluttag och jordfelsbrytare",
			"Golvvärme och handdukstork",
			"Spegelskåp med belysning",
		},
		Focus: []Highlight{
			{"Elsäkerhet i våtrum", "Badrum klassas som våtrum och omfattas av särskilda säkerhetszoner och regler."},
			{"Belysning & funktion", "Rätt belysning skapar både trygghet och trivsel – från arbetsljus till stämningsljus."},
			{"Behörig elektriker", "El i badrum ska alltid installeras fackmässigt för att uppfylla gällande krav."},
		},
		FAQ: []FAQItem{
			{"Måste el i badrum utföras av behörig elektriker?", "Ja. Elinstallationer i badrum ska utföras fackmässigt och enligt gällande elsäkerhetsregler."},
			{"Vad är zonindelning i badrum?", "Badrum delas in i olika säkerhetszoner som avgör var eluttag, belysning och utrustning får placeras."},
			{"Ingår jordfelsbrytare?", "Jordfelsbrytare är ett krav för el i våtrum och ska alltid finnas med i installationen."},
			{"Är golvvärme i badrum säkert?", "Ja, elburen golvvärme är säker när den installeras korrekt och enligt tillverkarens anvisningar."},
		},
	},
}

// Services returns every service in display order.
func Services() []Service {
	return append([]Service(nil), services...)
}

// ServiceBySlug finds a service by its URL slug.
func ServiceBySlug(slug string) (Service, bool) {
	for _, s := range services {
		if s.Slug == slug {
			return s, true
		}
	}
	return Service{}, false
}

// RelatedServices returns the other services, for cross-links on a detail page.
func RelatedServices(slug string) []Service {
	related := make([]Service, 0, len(services)-1)
	for _, s := range services {
		if s.Slug != slug {
			related = append(related, s)
		}
	}
	return related
}
