package lexicon

// crimeKeywords covers police, crime, violence and safety vocabulary in
// all four supported languages. Crime terms recur verbatim in short
// mixed-script social posts, so the whole set is matched against every
// text regardless of its detected language.
var crimeKeywords = []string{
	// English
	"police", "crime", "theft", "robbery", "burglary", "assault", "murder",
	"kidnap", "fraud", "scam", "drug", "violence", "weapon", "gun", "knife",
	"arrest", "jail", "court", "law", "legal", "illegal", "criminal",
	"safety", "security", "danger", "threat", "emergency", "help",
	// Tamil
	"போலீஸ்", "குற்றம்", "திருட்டு", "கொள்ளை", "வன்முறை", "ஆபத்து", "பாதுகாப்பு",
	// Hindi
	"पुलिस", "अपराध", "चोरी", "लूट", "हिंसा", "खतरा", "सुरक्षा",
	// Telugu
	"పోలీస్", "నేరం", "దొంగతనం", "దోపిడీ", "హింస", "ప్రమాదం", "భద్రత",
}

// CrimeKeywords returns the combined cross-language crime keyword set.
func CrimeKeywords() []string {
	return crimeKeywords
}
