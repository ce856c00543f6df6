package params

// FirstNames and LastNames are combined into user names
var FirstNames = []string{
	"Chanda", "Mwila", "Bwalya", "Mutale", "Natasha", "Mulenga", "Chileshe", "Kabwe",
	"Musonda", "Thandiwe", "Lweendo", "Mapalo", "Chipo", "Kondwani", "Lubinda", "Nchimunya",
	"Mwansa", "Temwani", "Inonge", "Mubita",
}

var LastNames = []string{
	"Banda", "Phiri", "Mwale", "Tembo", "Zulu", "Mumba", "Lungu", "Sakala", "Daka", "Ngoma",
	"Hamoonga", "Siame", "Mwanza", "Simfukwe", "Kalaba", "Nkhoma", "Chisenga", "Mwamba",
}

// EmailDomains are used for generated addresses
var EmailDomains = []string{"zamtel.zm", "agrimail.co.zm", "farmers.zm", "example.zm"}
