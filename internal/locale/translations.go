package locale

// tree is a nested mapping of string literals addressed by dot separated
// key paths. Leaves are strings; every other node is another tree.
type tree map[string]any

// translations holds one full tree per supported language. The catalogue is
// a read-only asset; nothing mutates it after init.
var translations = map[Language]tree{
	English: {
		"common": tree{
			"takePicture":          "Take Photo",
			"pickFromGallery":      "Choose from Gallery",
			"backToHome":           "Back to Home",
			"diseaseInfo":          "Disease Information",
			"allDiseases":          "All Diseases",
			"tryAgain":             "Try Again",
			"loading":              "Loading...",
			"analyzing":            "Analyzing leaf image...",
			"error":                "Error",
			"requestingPermission": "Requesting camera permission...",
			"permissionRequired":   "Camera access is required to detect diseases.",
			"grantPermission":      "Grant Permission",
			"goBack":               "Go Back",
			"moreInfo":             "More Information",
			"takeAnother":          "Take Another Photo",
			"languageToggle":       "English / සිංහල",
			"success":              "Success",
			"cancel":               "Cancel",
			"delete":               "Delete",
			"viewHistory":          "View History",
		},
		"home": tree{
			"title":             "Tomato Leaf Disease Detection",
			"subtitle":          "Detect diseases in tomato plants using your camera",
			"cameraButton":      "Take Photo",
			"diseaseInfoButton": "Disease Information",
		},
		"result": tree{
			"detectionResult": "Detection Result",
			"confidence":      "Confidence",
			"severity":        "Severity",
			"description":     "Description",
			"treatment":       "Treatment",
			"prevention":      "Prevention",
			"analysisError":   "Analysis Error",
			"errorMessage":    "Failed to analyze the image. Please check your internet connection and try again.",
			"healthy":         "Healthy",
			"notTomatoLeaf":   "Not a Tomato Leaf",
			"saveToHistory":   "Save to History",
			"savedToHistory":  "Result saved to history",
			"saveError":       "Failed to save result to history",
		},
		"info": tree{
			"commonDiseases":      "Common Tomato Leaf Diseases",
			"diseasesDescription": "Tomato plants are susceptible to various diseases that can affect their leaves, stems, and fruits. Early detection and proper management are key to preventing crop losses.",
			"diseasesList":        "Common Diseases:",
			"tapForInfo":          "Tap for more information",
			"causes":              "Causes",
			"symptoms":            "Symptoms",
			"management":          "Management",
			"economicImpact":      "Economic Impact",
			"scientificName":      "Scientific Name",
		},
		"auth": tree{
			"signIn":             "Sign In",
			"signUp":             "Sign Up",
			"createAccount":      "Create Account",
			"invalidCredentials": "Invalid email or password",
			"signInFailed":       "Failed to sign in",
			"logout":             "Log Out",
		},
		"severity": tree{
			"low":    "Low",
			"medium": "Medium",
			"high":   "High",
			"na":     "N/A",
		},
		"diseases": tree{
			"overview":         "Common Tomato Leaf Diseases",
			"earlyBlight":      "Early Blight",
			"lateBlight":       "Late Blight",
			"septoriaLeafSpot": "Septoria Leaf Spot",
			"bacterialSpot":    "Bacterial Spot",
			"leafMold":         "Leaf Mold",
			"spiderMites":      "Spider Mites",
			"targetSpot":       "Target Spot",
			"yellowLeafCurl":   "Tomato Yellow Leaf Curl Virus",
			"mosaicVirus":      "Tomato Mosaic Virus",
			"powderyMildew":    "Powdery Mildew",
			"healthy":          "Healthy",
			"notTomatoLeaf":    "Not a Tomato Leaf",
		},
		"history": tree{
			"title":                "Detection History",
			"noHistory":            "You have no saved detections. Take a photo to start detecting diseases!",
			"date":                 "Date",
			"notes":                "Notes",
			"deleteConfirmTitle":   "Delete Item",
			"deleteConfirmMessage": "Are you sure you want to delete this history item?",
			"loadError":            "Failed to load history",
			"deleteError":          "Failed to delete item",
		},
	},
	Sinhala: {
		"common": tree{
			"takePicture":          "ඡායාරූපයක් ගන්න",
			"pickFromGallery":      "ගැලරියෙන් තෝරන්න",
			"backToHome":           "මුල් පිටුවට",
			"diseaseInfo":          "රෝග තොරතුරු",
			"allDiseases":          "සියලුම රෝග",
			"tryAgain":             "නැවත උත්සාහ කරන්න",
			"loading":              "පූරණය වෙමින්...",
			"analyzing":            "කොළ පිළිබඳ විශ්ලේෂණය කරමින්...",
			"error":                "දෝෂයකි",
			"requestingPermission": "කැමරා අවසරය ඉල්ලමින්...",
			"permissionRequired":   "රෝග හඳුනා ගැනීමට කැමරා ප්‍රවේශය අවශ්‍ය වේ.",
			"grantPermission":      "අවසරය ලබා දෙන්න",
			"goBack":               "ආපසු යන්න",
			"moreInfo":             "වැඩිදුර තොරතුරු",
			"takeAnother":          "තවත් ඡායාරූපයක් ගන්න",
			"languageToggle":       "English / සිංහල",
			"success":              "සාර්ථකයි",
			"cancel":               "අවලංගු කරන්න",
			"delete":               "මකන්න",
			"viewHistory":          "ඉතිහාසය බලන්න",
		},
		"home": tree{
			"title":             "තක්කාලි කොළ රෝග හඳුනා ගැනීම",
			"subtitle":          "ඔබගේ කැමරාව භාවිතයෙන් තක්කාලි ශාකවල රෝග හඳුනා ගන්න",
			"cameraButton":      "ඡායාරූපයක් ගන්න",
			"diseaseInfoButton": "රෝග තොරතුරු",
		},
		"result": tree{
			"detectionResult": "හඳුනාගැනීමේ ප්‍රතිඵලය",
			"confidence":      "විශ්වාසනීයත්වය",
			"severity":        "බරපතලකම",
			"description":     "විස්තරය",
			"treatment":       "ප්‍රතිකාර",
			"prevention":      "වැළැක්වීම",
			"analysisError":   "විශ්ලේෂණ දෝෂය",
			"errorMessage":    "රූපය විශ්ලේෂණය කිරීමට අසමත් විය. කරුණාකර ඔබගේ අන්තර්ජාල සම්බන්ධතාවය පරීක්ෂා කර නැවත උත්සාහ කරන්න.",
			"healthy":         "සෞඛ්‍ය සම්පන්න",
			"notTomatoLeaf":   "තක්කාලි කොළයක් නොවේ",
			"saveToHistory":   "ඉතිහාසයට සුරකින්න",
			"savedToHistory":  "ප්‍රතිඵලය ඉතිහාසයට සුරැකිණි",
			"saveError":       "ප්‍රතිඵලය ඉතිහාසයට සුරැකීමට අසමත් විය",
		},
		"info": tree{
			"commonDiseases":      "සාමාන්‍ය තක්කාලි කොළ රෝග",
			"diseasesDescription": "තක්කාලි ශාක විවිධ රෝගවලට ලක්විය හැකි අතර, එය කොළ, කඳන් සහ පලතුරු වලට බලපෑම් ඇති කරයි. කල්තියා හඳුනාගැනීම සහ නිසි කළමනාකරණය අස්වැන්න අහිමි වීම වැළැක්වීම සඳහා යතුරකි.",
			"diseasesList":        "සාමාන්‍ය රෝග:",
			"tapForInfo":          "වැඩි විස්තර සඳහා තට්ටු කරන්න",
			"causes":              "හේතු",
			"symptoms":            "රෝග ලක්ෂණ",
			"management":          "කළමනාකරණය",
			"economicImpact":      "ආර්ථික බලපෑම",
			"scientificName":      "විද්‍යාත්මක නාමය",
		},
		"auth": tree{
			"signIn":             "පුරන්න",
			"signUp":             "ලියාපදිංචි වන්න",
			"createAccount":      "ගිණුමක් සාදන්න",
			"invalidCredentials": "අවලංගු විද්‍යුත් තැපෑල හෝ මුරපදය",
			"signInFailed":       "පිවිසීමට අසමත් විය",
			"logout":             "පිටවීම",
		},
		"severity": tree{
			"low":    "අඩු",
			"medium": "මධ්‍යම",
			"high":   "ඉහළ",
			"na":     "අදාළ නොවේ",
		},
		"diseases": tree{
			"overview":         "සාමාන්‍ය තක්කාලි කොළ රෝග",
			"earlyBlight":      "පෙරළිත රෝගය",
			"lateBlight":       "පශ්චිමාංගමාරය",
			"septoriaLeafSpot": "සෙප්ටෝරියා පත්‍ර ලප",
			"bacterialSpot":    "බැක්ටීරියා තිත්",
			"leafMold":         "පත්‍ර පූස්",
			"spiderMites":      "මකුළු මයිට්",
			"targetSpot":       "ඉලක්ක ලප",
			"yellowLeafCurl":   "තක්කාලි කහ පත්‍ර කැරලි වෛරසය",
			"mosaicVirus":      "තක්කාලි මොසෙයික් වෛරසය",
			"powderyMildew":    "පිටි පස් රෝගය",
			"healthy":          "සෞඛ්‍ය සම්පන්න",
			"notTomatoLeaf":    "තක්කාලි කොළයක් නොවේ",
		},
		"history": tree{
			"title":                "හඳුනා ගැනීමේ ඉතිහාසය",
			"noHistory":            "ඔබට සුරකින ලද හඳුනා ගැනීම් නැත. රෝග හඳුනා ගැනීම ආරම්භ කිරීමට ඡායාරූපයක් ගන්න!",
			"date":                 "දිනය",
			"notes":                "සටහන්",
			"deleteConfirmTitle":   "අයිතමය මකන්න",
			"deleteConfirmMessage": "ඔබට මෙම ඉතිහාස අයිතමය මැකීමට අවශ්‍ය ද?",
			"loadError":            "ඉතිහාසය පූරණය කිරීමට අසමත් විය",
			"deleteError":          "අයිතමය මැකීමට අසමත් විය",
		},
	},
}
