package site

// FAQItem is one question and answer.
type FAQItem struct {
	Question string
	Answer   string
}

var generalFAQ = []FAQItem{
	{"Vad kostar en badrumsrenovering i Sundsvall?", "Priset varierar beroende på badrummets storlek, materialval och omfattning. Som riktmärke: litet badrum (under 5 kvm) cirka 80 000–150 000 kr, mellan (5–10 kvm) cirka 150 000–250 000 kr och större (över 10 kvm) cirka 250 000–400 000 kr. ROT-avdrag kan sänka arbetskostnaden beroende på din situation."},
	{"Hur lång tid tar en badrumsrenovering?", "En vanlig badrumsrenovering tar ofta 3–6 veckor, men tidsplanen beror på omfattning, material, planlösning och tillgänglighet. En enklare renovering utan större ändringar kan gå snabbare, medan mer omfattande jobb kan ta längre tid."},
	{"Får man ROT-avdrag på badrumsrenovering?", "Ja, ROT-avdrag kan gälla för arbetskostnaden vid badrumsrenovering enligt Skatteverkets regler. Avdraget gäller normalt inte material. Du behöver uppfylla villkoren (t.ex. äga bostaden) och utförande företag hanterar avdraget på fakturan."},
	{"Krävs det bygglov för badrumsrenovering?", "Vanligtvis krävs inget bygglov för renovering i befintligt badrum. Men om du gör större ändringar i planlösningen, flyttar bärande delar eller påverkar ventilation kan det krävas bygganmälan/bygglov. Kontakta Sundsvalls kommun för bedömning i ditt fall."},
	{"Är företagen ni förmedlar till certifierade?", "Vi strävar efter att matcha din förfrågan med företag som följer branschregler för våtrum och har relevant erfarenhet. Exakta certifieringar och behörigheter kan variera och bekräftas alltid i offert och avtal med utförande företag."},
	{"Kan man bo kvar under renoveringen?", "Det går ofta att bo kvar, men du har vanligtvis begränsad eller ingen tillgång till badrummet under perioden. Många ordnar ett alternativt badrum (t.ex. i förening, hos familj eller via tillfälliga lösningar) för att underlätta."},
	{"Vad ingår i offerten?", "En tydlig offert bör innehålla en specificerad beskrivning av arbetet, material, arbetskostnad (ofta separat för ROT), tidsplan, betalningsvillkor och eventuella garantier. Jämför gärna flera offerter och ställ frågor om något är oklart."},
	{"Hur fungerar er tjänst?", "Du fyller i ett formulär med information om ditt projekt. Vi förmedlar förfrågan till passande lokala företag som kan vara intresserade. Företagen kontaktar dig sedan med frågor eller offert. Tjänsten är kostnadsfri och utan köpkrav."},
	{"Vad är tätskikt och varför är det viktigt?", "Tätskikt är ett vattentätt skydd under ytskikt (t.ex. kakel/klinker) i våtrum. Det minskar risken för fuktskador och mögel. Ett korrekt utfört tätskikt enligt branschregler är en av de viktigaste delarna i en badrumsrenovering."},
	{"Vilka områden täcker ni?", "Vi förmedlar förfrågningar i Sundsvall med omnejd, exempelvis Timrå, Alnö och Njurunda. Om du bor utanför området kan du ändå skicka in en förfrågan så kontrollerar vi om det finns passande företag."},
	{"Vad händer om något går fel efter renoveringen?", "Villkor, garanti och ansvar regleras mellan dig och utförande företag. Spara alltid offert, avtal, kvitton och eventuell dokumentation från våtrumsarbetet. Om något uppstår kontaktar du utförande företag direkt så att de kan hantera ärendet."},
	{"Hur väljer jag rätt kakel och klinker?", "Utgå från badrummets storlek, ljus och stil. Ljusa färger kan göra små badrum luftigare. Större plattor ger ofta ett lugnare uttryck (färre fogar). För golv är halkskydd viktigt. Be gärna utförande företag om råd kring materialval och underlag."},
}

// GeneralFAQ returns the questions on /faq.
func GeneralFAQ() []FAQItem {
	return append([]FAQItem(nil), generalFAQ...)
}

// HomeFAQ returns the short selection shown on the home page.
func HomeFAQ() []FAQItem {
	return []FAQItem{generalFAQ[0], generalFAQ[1], generalFAQ[2]}
}

// ContactFAQ returns the questions answered next to the contact form.
func ContactFAQ() []FAQItem {
	return []FAQItem{
		{"Är det gratis att skicka in en förfrågan?", "Ja, det är kostnadsfritt att skicka in. Du väljer själv om du vill gå vidare med någon offert."},
		{"Hur snabbt blir jag kontaktad?", "Målet är att första kontakten sker inom 24 timmar, men det kan variera beroende på säsong och omfattning."},
		{"Måste jag tacka ja till en offert?", "Nej. Du är inte bunden att acceptera någon offert."},
		{"Hur hanteras mina personuppgifter?", "Vi behandlar uppgifter enligt vår integritetspolicy och delar endast relevanta uppgifter med företag som kan vara aktuella för ditt projekt."},
	}
}

// PriceRange is an indicative cost interval for one bathroom size.
type PriceRange struct {
	Size  string
	Area  string
	Range string
}

// PriceRanges returns the indicative prices on the home page.
func PriceRanges() []PriceRange {
	return []PriceRange{
		{"Litet badrum", "Under 5 kvm", "80 000 – 150 000 kr"},
		{"Mellan badrum", "5–10 kvm", "150 000 – 250 000 kr"},
		{"Stort badrum", "Över 10 kvm", "250 000 – 400 000 kr"},
	}
}

// ProcessSteps returns the three-step explanation of the service.
func ProcessSteps() []Highlight {
	return []Highlight{
		{"Beskriv ditt projekt", "Fyll i formuläret med dina önskemål och visioner för ditt nya badrum."},
		{"Få matchade offerter", "Vi förmedlar din förfrågan till lokala hantverkare i Sundsvall."},
		{"Välj din favorit", "Jämför offerterna i lugn och ro och välj den som passar dig bäst."},
	}
}

// TrustFeatures returns the quality arguments on the home page.
func TrustFeatures() []Highlight {
	return []Highlight{
		{"Kontrollerade hantverkare", "Vi förmedlar till företag som följer branschregler för våtrum och har ansvarsförsäkring."},
		{"Tydliga offerter", "Omfattning, material, ROT och tidsplan ska framgå innan du bestämmer dig."},
		{"Snabb respons", "Målet är svar inom 24 timmar."},
	}
}

// ContactBenefits returns the bullet list next to the contact form.
func ContactBenefits() []string {
	return []string{
		"Målet är svar inom 24 timmar",
		"Helt kostnadsfritt att skicka in",
		"Ingen bindning eller köpkrav",
	}
}

// NextSteps returns what happens after a lead has been sent.
func NextSteps() []Highlight {
	return []Highlight{
		{"Förfrågan mottagen", "Vi har tagit emot din förfrågan och matchar den mot relevanta företag."},
		{"Svar inom 24h", "Målet är att du ska bli kontaktad inom 24 timmar."},
		{"Var redo", "Ha koll på mobilen de närmaste dagarna så du inte missar samtal."},
	}
}

// AboutSteps returns how the referral service works.
func AboutSteps() []Highlight {
	return []Highlight{
		{"Du fyller i formuläret", "Berätta kort om projektet: typ av badrum, storlek, tidsram och postnummer. Det tar bara ett par minuter."},
		{"Vi matchar din förfrågan", "Vi förmedlar förfrågan vidare till lämpliga lokala företag som kan vara intresserade av uppdraget."},
		{"Du blir kontaktad", "Företag som vill lämna offert kontaktar dig direkt. Ofta sker första kontakten inom 24 timmar."},
		{"Du väljer själv", "Du jämför upplägg, pris och villkor – och bestämmer själv om du vill gå vidare. Ingen bindning."},
	}
}

// GuideSteps returns the phases of a renovation in order.
func GuideSteps() []Highlight {
	return []Highlight{
		{"Planering", "Mål, budget, stil, funktion. Här bestäms badrummets layout, inredning och krav (t.ex. golvvärme, nisch, duschvägg)."},
		{"Rivning & underarbete", "Rivning av ytskikt och inredning. Underlaget bedöms och eventuella åtgärder planeras innan uppbyggnad."},
		{"VVS", "Rör och avlopp dras eller justeras för dusch, WC och handfat. En kritisk fas för att undvika framtida läckage."},
		{"El", "Belysning, uttag, golvvärme (el) och handdukstork planeras och installeras enligt våtrumsregler och zonindelning."},
		{"Tätskikt", "Tätskiktet är badrummets viktigaste skydd. Utförandet ska följa branschpraxis och dokumenteras."},
		{"Kakel & klinker", "Plattsättning, fall mot golvbrunn, fogning och silikon. Här avgörs både känsla och hållbarhet."},
		{"Montering", "Montering av inredning, blandare, duschvägg, spegel och belysning. Detaljer och avslut kontrolleras."},
		{"Slutkontroll", "Genomgång, dokumentation och skötselråd. Spara offert, avtal och underlag för garanti och framtida frågor."},
	}
}

// GuideMistakes returns common mistakes covered by the guide.
func GuideMistakes() []Highlight {
	return []Highlight{
		{"För lite planering innan start", "Bristande beslut kring inredning och placering leder ofta till sena ändringar som fördyrar och förlänger."},
		{"Fel ordning på moment", "Om VVS/el/tätskikt inte koordineras korrekt kan det skapa omarbete och risk för framtida problem."},
		{"Otydlig offert", "En bra offert ska vara specificerad: vad ingår, material, arbete, ROT, tidsplan, villkor."},
		{"Dålig fokus på fall & detaljer", "Fall mot golvbrunn, fog/silikon och avslut är avgörande för både funktion och slutkänsla."},
	}
}

// GuideChecklist returns the pre-renovation checklist.
func GuideChecklist() []string {
	return []string{
		"Bestäm budget och mål (funktion + stil)",
		"Välj vilka produkter som ska ingå (WC, handfat, blandare, dusch, belysning)",
		"Tydliggör om något ska flyttas (avlopp, rör, el)",
		"Be om specificerad offert (arbete/material, ROT, tidsplan)",
		"Säkerställ att tätskikt, VVS och el hanteras fackmässigt",
		"Planera alternativt badrum under perioden",
		"Spara dokumentation, kvitton och eventuella intyg",
	}
}
