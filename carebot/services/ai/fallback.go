package ai

import "strings"

// symptomCategory is the bucket a message lands in when the canned
// responder has to answer.
type symptomCategory int

const (
	categoryGeneric symptomCategory = iota
	categoryFeverHeadache
	categoryCoughCold
	categoryStomach
)

// classifySymptoms buckets a message by case-insensitive keyword match.
// The fever+headache check runs before the broader cough/cold and stomach
// checks; the first match wins.
func classifySymptoms(message string) symptomCategory {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "fever") && strings.Contains(m, "headache"):
		return categoryFeverHeadache
	case strings.Contains(m, "cough") || strings.Contains(m, "cold"):
		return categoryCoughCold
	case strings.Contains(m, "stomach") || strings.Contains(m, "diarrhea") || strings.Contains(m, "vomit"):
		return categoryStomach
	default:
		return categoryGeneric
	}
}

var fallbackResponses = map[symptomCategory]map[string]string{
	categoryFeverHeadache: {
		"en-US": `I understand you're dealing with a fever along with a headache, and that combination can leave you feeling quite drained. A fever together with a headache is often a sign that your body is fighting off an infection, such as the flu or a viral illness.

For now, rest as much as you can in a quiet, dimly lit room, and drink plenty of fluids like water, clear soups, or oral rehydration solution. You may take paracetamol to bring the fever down and ease the headache, following the dosage on the packaging. A cool compress on your forehead can also bring some comfort.

Please see a doctor promptly if the fever stays above 103 degrees Fahrenheit, lasts more than three days, or if you notice a stiff neck, confusion, a rash, or sensitivity to light, as these need medical attention right away.`,

		"hi-IN": `मैं समझता हूं कि आपको बुखार के साथ सिरदर्द भी है, और यह संयोजन आपको काफी थका हुआ महसूस करा सकता है। बुखार और सिरदर्द अक्सर इस बात का संकेत होते हैं कि आपका शरीर किसी संक्रमण से लड़ रहा है, जैसे फ्लू या कोई वायरल बीमारी।

अभी के लिए, एक शांत और कम रोशनी वाले कमरे में जितना हो सके आराम करें, और पानी, साफ सूप या ओआरएस जैसे तरल पदार्थ खूब पिएं। बुखार कम करने और सिरदर्द से राहत के लिए आप पैकेट पर दी गई खुराक के अनुसार पैरासिटामोल ले सकते हैं। माथे पर ठंडी पट्टी रखने से भी आराम मिल सकता है।

यदि बुखार 103 डिग्री फारेनहाइट से ऊपर रहता है, तीन दिन से अधिक बना रहता है, या आपको गर्दन में अकड़न, भ्रम, चकत्ते या रोशनी से परेशानी महसूस होती है, तो कृपया तुरंत डॉक्टर से मिलें, क्योंकि इन स्थितियों में तत्काल चिकित्सा की आवश्यकता होती है।`,

		"te-IN": `మీకు జ్వరంతో పాటు తలనొప్పి కూడా ఉందని నేను అర్థం చేసుకున్నాను, ఈ రెండూ కలిసి మిమ్మల్ని బాగా అలసిపోయేలా చేస్తాయి. జ్వరం మరియు తలనొప్పి కలిసి రావడం తరచుగా మీ శరీరం ఫ్లూ లేదా వైరల్ వ్యాధి వంటి ఇన్ఫెక్షన్‌తో పోరాడుతోందని సూచిస్తుంది.

ప్రస్తుతానికి, నిశ్శబ్దమైన, తక్కువ వెలుతురు ఉన్న గదిలో వీలైనంత విశ్రాంతి తీసుకోండి, నీరు, క్లియర్ సూప్ లేదా ఓఆర్ఎస్ వంటి ద్రవాలను బాగా తాగండి. జ్వరం తగ్గించడానికి మరియు తలనొప్పి నుంచి ఉపశమనం పొందడానికి ప్యాకెట్ మీద సూచించిన మోతాదు ప్రకారం పారాసిటమాల్ తీసుకోవచ్చు. నుదుటిపై చల్లని గుడ్డ పెట్టుకోవడం కూడా కొంత ఉపశమనం ఇస్తుంది.

జ్వరం 103 డిగ్రీల ఫారెన్‌హీట్ కంటే ఎక్కువగా ఉంటే, మూడు రోజులకు మించి కొనసాగితే, లేదా మెడ బిగుసుకుపోవడం, గందరగోళం, దద్దుర్లు లేదా వెలుతురుకు ఇబ్బంది వంటివి కనిపిస్తే, వెంటనే వైద్యుడిని సంప్రదించండి, ఎందుకంటే వీటికి తక్షణ వైద్య సహాయం అవసరం.`,
	},
	categoryCoughCold: {
		"en-US": `It sounds like you're dealing with a cough or cold, and I know how uncomfortable that can make your days and nights. Most colds are caused by viruses and settle on their own within a week to ten days.

In the meantime, drink warm fluids such as ginger tea, warm water with honey, or clear soups, as they soothe the throat and loosen congestion. Gargling with warm salt water a few times a day can ease throat irritation, and steam inhalation may help you breathe more comfortably. Try to rest well and avoid cold drinks and dusty environments.

If your cough lasts beyond two weeks, brings up blood, or comes with high fever, chest pain, or difficulty breathing, please consult a doctor, since these can point to something that needs proper treatment.`,

		"hi-IN": `लगता है आपको खांसी या जुकाम है, और मैं जानता हूं कि यह आपके दिन और रात दोनों को कितना असहज बना सकता है। अधिकांश जुकाम वायरस के कारण होते हैं और एक सप्ताह से दस दिनों में अपने आप ठीक हो जाते हैं।

इस बीच, अदरक की चाय, शहद के साथ गर्म पानी या साफ सूप जैसे गर्म तरल पदार्थ पिएं, क्योंकि ये गले को आराम देते हैं और जकड़न कम करते हैं। दिन में कुछ बार गर्म नमक के पानी से गरारे करने से गले की जलन कम होती है, और भाप लेने से सांस लेना आसान हो सकता है। अच्छी तरह आराम करें और ठंडे पेय तथा धूल भरे वातावरण से बचें।

यदि आपकी खांसी दो सप्ताह से अधिक समय तक बनी रहती है, खून आता है, या तेज बुखार, सीने में दर्द या सांस लेने में कठिनाई होती है, तो कृपया डॉक्टर से परामर्श लें, क्योंकि ये किसी ऐसी समस्या का संकेत हो सकते हैं जिसका उचित इलाज जरूरी है।`,

		"te-IN": `మీకు దగ్గు లేదా జలుబు ఉన్నట్లు అనిపిస్తోంది, అది మీ పగలు, రాత్రులను ఎంత అసౌకర్యంగా చేస్తుందో నాకు తెలుసు. చాలా జలుబులు వైరస్‌ల వల్ల వస్తాయి మరియు వారం నుంచి పది రోజుల్లో వాటంతట అవే తగ్గిపోతాయి.

ఈలోగా, అల్లం టీ, తేనెతో గోరువెచ్చని నీరు లేదా క్లియర్ సూప్ వంటి వెచ్చని ద్రవాలు తాగండి, ఇవి గొంతుకు ఉపశమనం ఇచ్చి, పట్టేసిన ముక్కును తేలిక చేస్తాయి. రోజుకు కొన్ని సార్లు గోరువెచ్చని ఉప్పు నీటితో పుక్కిలించడం గొంతు మంటను తగ్గిస్తుంది, ఆవిరి పట్టడం శ్వాసను సులభం చేస్తుంది. బాగా విశ్రాంతి తీసుకోండి, చల్లని పానీయాలు మరియు దుమ్ము ఉన్న ప్రదేశాలకు దూరంగా ఉండండి.

దగ్గు రెండు వారాలకు మించి కొనసాగితే, రక్తం పడితే, లేదా అధిక జ్వరం, ఛాతీ నొప్పి లేదా శ్వాస తీసుకోవడంలో ఇబ్బంది ఉంటే, దయచేసి వైద్యుడిని సంప్రదించండి, ఎందుకంటే వీటికి సరైన చికిత్స అవసరం కావచ్చు.`,
	},
	categoryStomach: {
		"en-US": `I'm sorry to hear your stomach is troubling you. Stomach upsets, diarrhea, and vomiting are most often caused by something you ate or a passing infection, and they usually settle within a day or two.

The most important thing right now is to stay hydrated. Take small, frequent sips of water or oral rehydration solution, and once you feel able to eat, start with bland foods like rice, bananas, toast, or curd. Avoid spicy, oily, and dairy-heavy foods until you feel better, and give your stomach time to rest.

Please seek medical care if you see blood in your stool or vomit, if you cannot keep any fluids down, if you have signs of dehydration like very dark urine or dizziness, or if severe pain or symptoms continue beyond two days.`,

		"hi-IN": `मुझे यह जानकर दुख हुआ कि आपका पेट आपको परेशान कर रहा है। पेट की गड़बड़ी, दस्त और उल्टी अक्सर किसी खाई हुई चीज या हल्के संक्रमण के कारण होती है, और ये आमतौर पर एक-दो दिन में ठीक हो जाती हैं।

अभी सबसे जरूरी है कि आप हाइड्रेटेड रहें। थोड़ी-थोड़ी मात्रा में बार-बार पानी या ओआरएस का घोल पिएं, और जब खाने का मन हो, तो चावल, केला, टोस्ट या दही जैसे हल्के खाद्य पदार्थों से शुरुआत करें। जब तक आप बेहतर महसूस न करें, मसालेदार, तैलीय और भारी डेयरी वाले भोजन से बचें, और अपने पेट को आराम दें।

यदि आपके मल या उल्टी में खून दिखे, आप कोई भी तरल पदार्थ रोक नहीं पा रहे हों, बहुत गहरे रंग का पेशाब या चक्कर जैसे निर्जलीकरण के लक्षण हों, या तेज दर्द या लक्षण दो दिन से अधिक बने रहें, तो कृपया चिकित्सा सहायता लें।`,

		"te-IN": `మీ కడుపు మిమ్మల్ని ఇబ్బంది పెడుతోందని తెలిసి బాధగా ఉంది. కడుపు నొప్పి, విరేచనాలు మరియు వాంతులు చాలావరకు తిన్న ఆహారం వల్ల లేదా తాత్కాలిక ఇన్ఫెక్షన్ వల్ల వస్తాయి, ఇవి సాధారణంగా ఒకటి రెండు రోజుల్లో తగ్గిపోతాయి.

ప్రస్తుతం అత్యంత ముఖ్యమైనది శరీరంలో నీరు తగ్గకుండా చూసుకోవడం. కొద్దికొద్దిగా, తరచుగా నీరు లేదా ఓఆర్ఎస్ ద్రావణం తాగండి, తినగలిగినప్పుడు అన్నం, అరటిపండు, టోస్ట్ లేదా పెరుగు వంటి తేలికపాటి ఆహారంతో మొదలుపెట్టండి. కోలుకునే వరకు మసాలా, నూనె ఎక్కువగా ఉండే ఆహారాలకు దూరంగా ఉండండి, మీ కడుపుకు విశ్రాంతి ఇవ్వండి.

మలం లేదా వాంతిలో రక్తం కనిపిస్తే, ఏ ద్రవమూ లోపల ఉంచుకోలేకపోతే, చాలా ముదురు రంగు మూత్రం లేదా తల తిరగడం వంటి డీహైడ్రేషన్ సంకేతాలు ఉంటే, లేదా తీవ్రమైన నొప్పి లేదా లక్షణాలు రెండు రోజులకు మించి కొనసాగితే, దయచేసి వైద్య సహాయం తీసుకోండి.`,
	},
	categoryGeneric: {
		"en-US": `I understand you're not feeling well. Based on your symptoms, I recommend resting well, staying hydrated, and monitoring your condition closely over the next day or two.

Eat light, easily digestible food, and avoid anything that seems to make you feel worse. Keeping a simple note of when your symptoms started and how they change can be very helpful if you need to see a doctor later.

If your symptoms persist or worsen, please consult a healthcare professional. Could you tell me more about your specific symptoms so I can give you better guidance?`,

		"hi-IN": `मैं समझता हूं कि आप अच्छा महसूस नहीं कर रहे हैं। आपके लक्षणों के आधार पर, मैं अच्छी तरह आराम करने, हाइड्रेटेड रहने और अगले एक-दो दिनों तक अपनी स्थिति पर बारीकी से नजर रखने की सलाह देता हूं।

हल्का और आसानी से पचने वाला भोजन करें, और ऐसी किसी भी चीज से बचें जो आपकी तबीयत बिगाड़ती लगे। आपके लक्षण कब शुरू हुए और कैसे बदल रहे हैं, इसका एक साधारण नोट रखना बाद में डॉक्टर को दिखाने में बहुत मददगार हो सकता है।

यदि लक्षण बने रहते हैं या बिगड़ते हैं, तो कृपया किसी स्वास्थ्य पेशेवर से सलाह लें। क्या आप अपने विशिष्ट लक्षणों के बारे में और बता सकते हैं ताकि मैं आपको बेहतर मार्गदर्शन दे सकूं?`,

		"te-IN": `మీరు బాగా లేరని నేను అర్థం చేసుకున్నాను. మీ లక్షణాల ఆధారంగా, బాగా విశ్రాంతి తీసుకోవడం, తగినంత నీరు తాగడం మరియు వచ్చే ఒకటి రెండు రోజులు మీ పరిస్థితిని జాగ్రత్తగా గమనించడం మంచిదని సూచిస్తున్నాను.

తేలికగా జీర్ణమయ్యే ఆహారం తినండి, మీకు ఇబ్బంది కలిగించేవాటికి దూరంగా ఉండండి. మీ లక్షణాలు ఎప్పుడు మొదలయ్యాయో, ఎలా మారుతున్నాయో చిన్న నోట్ రాసుకోవడం తరువాత వైద్యుడిని కలిసినప్పుడు చాలా ఉపయోగపడుతుంది.

లక్షణాలు కొనసాగితే లేదా తీవ్రమైతే, దయచేసి వైద్య నిపుణుడిని సంప్రదించండి. మీ లక్షణాల గురించి మరింత వివరంగా చెప్పగలరా, అప్పుడు నేను మీకు మరింత మంచి సూచనలు ఇవ్వగలను?`,
	},
}

// Respond is the deterministic canned responder used whenever no provider
// call succeeds. Same (message, lang) in, same text out.
func Respond(message, lang string) string {
	category := classifySymptoms(message)
	byLang := fallbackResponses[category]
	if text, ok := byLang[lang]; ok {
		return text
	}
	return byLang[DefaultLanguage]
}
