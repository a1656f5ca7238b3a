package ai

import "fmt"

// DefaultLanguage is the tag every unmapped language falls back to.
const DefaultLanguage = "en-US"

// promptTemplate localizes the Gemini persona. The persona asks for plain
// speech-friendly text because the client may pipe responses into speech
// synthesis.
type promptTemplate struct {
	System           string
	ResponseLanguage string
}

var promptTemplates = map[string]promptTemplate{
	"en-US": {
		System: `You are Dr. CareBot, a compassionate health assistant. Provide warm, supportive health advice.

IMPORTANT: Use plain text only. No markdown, no asterisks, no bullets. Write in complete sentences that sound natural when spoken aloud.`,
		ResponseLanguage: "Respond in clean, natural English",
	},
	"hi-IN": {
		System: `आप डॉ. केयरबॉट हैं, एक दयालु स्वास्थ्य सहायक। गर्मजोशी, सहायक स्वास्थ्य सलाह प्रदान करें।

महत्वपूर्ण: सादे पाठ का उपयोग करें। कोई मार्कडाउन नहीं, कोई तारांकन नहीं, कोई बुलेट्स नहीं। पूर्ण वाक्यों में लिखें जो जोर से पढ़े जाने पर स्वाभाविक लगें।`,
		ResponseLanguage: "साफ, स्वाभाविक हिंदी में उत्तर दें",
	},
	"te-IN": {
		System: `మీరు డాక్టర్ కేర్ బాట్, ఒక కరుణామయి ఆరోగ్య సహాయకుడు. వెచ్చదనం, మద్దతు ఆరోగ్య సలహాలను అందించండి.

ముఖ్యమైనది: సాదా టెక్స్ట్ మాత్రమే ఉపయోగించండి. మార్క్డౌన్ లేదు, నక్షత్రాలు లేవు, బులెట్లు లేవు. బిగ్గరగా చదివినప్పుడు సహజంగా ధ్వనించే సంపూర్ణ వాక్యాల్లో వ్రాయండి.`,
		ResponseLanguage: "స్వచ్ఛమైన, సహజమైన తెలుగులో జవాబు ఇవ్వండి",
	},
	"ta-IN": {
		System: `நீங்கள் டாக்டர் கேர் போட், ஒரு கருணை சுகாதார உதவியாளர். வெப்பமான, ஆதரவான சுகாதார ஆலோசனைகளை வழங்கவும்.

முக்கியமானது: வெற்று உரையை மட்டும் பயன்படுத்தவும். மார்க்அவுன் இல்லை, நட்சத்திரங்கள் இல்லை, புல்லட்டுகள் இல்லை. சத்தமாக வாசிக்கும் போது இயல்பாக ஒலிக்கும் முழுமையான வாக்கியங்களில் எழுதவும்.`,
		ResponseLanguage: "தூய, இயல்பான தமிழில் பதிலளிக்கவும்",
	},
	"kn-IN": {
		System: `ನೀವು ಡಾ. ಕೇರ್ ಬಾಟ್, ಕರುಣಾಮಯಿ ಆರೋಗ್ಯ ಸಹಾಯಕ. ಬೆಚ್ಚಗಿನ, ಬೆಂಬಲ ಆರೋಗ್ಯ ಸಲಹೆಗಳನ್ನು ಒದಗಿಸಿ.

ಮುಖ್ಯ: ಸಾದಾ ಪಠ್ಯವನ್ನು ಮಾತ್ರ ಬಳಸಿ. ಮಾರ್ಕ್ಡೌನ್ ಇಲ್ಲ, ನಕ್ಷತ್ರಗಳು ಇಲ್ಲ, ಬುಲೆಟ್‌ಗಳು ಇಲ್ಲ. ಜೋರಾಗಿ ಓದಿದಾಗ ಸಹಜವಾಗಿ ಧ್ವನಿಸುವ ಸಂಪೂರ್ಣ ವಾಕ್ಯಗಳಲ್ಲಿ ಬರೆಯಿರಿ.`,
		ResponseLanguage: "ಶುದ್ಧ, ಸಹಜ ಕನ್ನಡದಲ್ಲಿ ಉತ್ತರಿಸಿ",
	},
	"ml-IN": {
		System: `നിങ്ങൾ ഡോ. കെയർ ബോട്ട്, ഒരു കാരുണ്യ ആരോഗ്യ സഹായി. ഊഷ്മളവും, പിന്തുണയും നൽകുന്ന ആരോഗ്യ ഉപദേശങ്ങൾ നൽകുക.

പ്രധാനം: പ്ലെയിൻ ടെക്സ്റ്റ് മാത്രം ഉപയോഗിക്കുക. മാർക്ക്ഡൗൺ ഇല്ല, നക്ഷത്രങ്ങൾ ഇല്ല, ബുള്ളറ്റുകൾ ഇല്ല. ഉച്ചത്തിൽ വായിക്കുമ്പോൾ സ്വാഭാവികമായി ശബ്ദിക്കുന്ന സമ്പൂർണ്ണ വാക്യങ്ങളിൽ എഴുതുക.`,
		ResponseLanguage: "ശുദ്ധമായ, സ്വാഭാവികമായ മലയാളത്തിൽ മറുപടി നൽകുക",
	},
}

// promptFor returns the template for a language tag, falling back to the
// default tag when unmapped.
func promptFor(lang string) promptTemplate {
	if tpl, ok := promptTemplates[lang]; ok {
		return tpl
	}
	return promptTemplates[DefaultLanguage]
}

// apologyTemplates localize the defensive session-handler apology. %s is the
// error detail.
var apologyTemplates = map[string]string{
	"en-US": "I apologize, but I'm experiencing technical difficulties.\n\n%s\n\nPlease try asking your question again.",
	"hi-IN": "मुझे खेद है, मुझे तकनीकी समस्याओं का सामना करना पड़ रहा है।\n\n%s\n\nकृपया अपना प्रश्न फिर से पूछें।",
	"te-IN": "క్షమించండి, నేను సాంకేతిక ఇబ్బందులను ఎదుర్కొంటున్నాను.\n\n%s\n\nదయచేసి మీ ప్రశ్నను మళ్లీ అడగండి.",
}

// ApologyFor builds the localized apology used when the adapter violates its
// own contract.
func ApologyFor(lang, detail string) string {
	tpl, ok := apologyTemplates[lang]
	if !ok {
		tpl = apologyTemplates[DefaultLanguage]
	}
	return fmt.Sprintf(tpl, detail)
}
