package lexicon

import "social-intel/domain"

// TrainingDoc is one labeled example for the intent classifier.
type TrainingDoc struct {
	Language domain.Language
	Text     string
	Label    string
}

// Intent labels used by the training corpus.
const (
	IntentPositive = "positive"
	IntentNegative = "negative"
	IntentNeutral  = "neutral"
)

// intentCorpus is the fixed example corpus for the non-English intent
// model, fit once at engine initialization.
var intentCorpus = []TrainingDoc{
	{domain.Tamil, "போலீஸ் நல்லா வேலை செய்யுறாங்க", IntentPositive},
	{domain.Tamil, "பாதுகாப்பு மிக சிறப்பா இருக்கு", IntentPositive},
	{domain.Tamil, "அவசர காலத்துல உடனே வந்தாங்க", IntentPositive},
	{domain.Tamil, "திருட்டு நடந்திருக்கு பயமா இருக்கு", IntentNegative},
	{domain.Tamil, "ரொம்ப மோசமான சம்பவம்", IntentNegative},
	{domain.Tamil, "என்ன பண்ணுறாங்க தெரியலை", IntentNeutral},

	{domain.Hindi, "पुलिस बहुत अच्छा काम कर रही है", IntentPositive},
	{domain.Hindi, "सुरक्षा बहुत बेहतरीन है", IntentPositive},
	{domain.Hindi, "चोरी हो गई बहुत डर लग रहा", IntentNegative},
	{domain.Hindi, "बुरी घटना हुई है", IntentNegative},
	{domain.Hindi, "क्या हो रहा है पता नहीं", IntentNeutral},

	{domain.Telugu, "పోలీసులు చాలా బాగా పని చేస్తున్నారు", IntentPositive},
	{domain.Telugu, "భద్రత చాలా మెరుగ్గా ఉంది", IntentPositive},
	{domain.Telugu, "దొంగతనం జరిగింది భయం వేస్తోంది", IntentNegative},
	{domain.Telugu, "చెడ్డ సంఘటన జరిగింది", IntentNegative},
	{domain.Telugu, "ఏమి జరుగుతుందో తెలియదు", IntentNeutral},
}

// IntentCorpus returns the labeled examples grouped in declaration order.
func IntentCorpus() []TrainingDoc {
	return intentCorpus
}
