package advice

import "github.com/example/leafcheck/internal/classifier"

// Care guidance and descriptions per language, keyed by the canonical
// disease identifier. The tables are the app's domain content and change
// only together with the model's label set.

var recommendationsEn = map[classifier.DiseaseID]Recommendation{
	classifier.BacterialSpot: {
		Treatment:  "Apply copper-based bactericides according to label instructions. Remove and destroy infected leaves and fruits.",
		Prevention: "Use disease-free seeds and transplants. Avoid overhead irrigation. Practice crop rotation with non-solanaceous crops.",
	},
	classifier.EarlyBlight: {
		Treatment:  "Apply fungicides containing chlorothalonil, mancozeb, or copper. Remove infected leaves to prevent spread.",
		Prevention: "Ensure proper plant spacing for air circulation. Use mulch to prevent soil splash. Water at the base of plants, not the leaves.",
	},
	classifier.LateBlight: {
		Treatment:  "Apply copper-based fungicides or specific late blight fungicides. Remove and destroy infected plants immediately.",
		Prevention: "Plant resistant varieties. Avoid watering foliage. Destroy volunteer tomato plants. Plant in well-drained soil.",
	},
	classifier.LeafMold: {
		Treatment:  "Apply fungicides with chlorothalonil. Improve air circulation around plants.",
		Prevention: "Increase spacing between plants. Reduce humidity in greenhouses. Remove and destroy infected leaves.",
	},
	classifier.SeptoriaLeafSpot: {
		Treatment:  "Apply fungicides with chlorothalonil or copper. Remove infected leaves promptly.",
		Prevention: "Mulch around plants to prevent soil splash. Use drip irrigation. Practice crop rotation.",
	},
	classifier.SpiderMites: {
		Treatment:  "Apply insecticidal soap or neem oil. For severe infestations, use appropriate miticides.",
		Prevention: "Regularly spray plants with water to discourage mites. Introduce predatory mites. Maintain plant vigor with proper watering and nutrients.",
	},
	classifier.TargetSpot: {
		Treatment:  "Apply fungicides with chlorothalonil or mancozeb. Remove infected leaves.",
		Prevention: "Avoid overhead irrigation. Maintain good air circulation. Practice crop rotation.",
	},
	classifier.YellowLeafCurl: {
		Treatment:  "No cure exists for infected plants. Remove and destroy infected plants to prevent spread.",
		Prevention: "Use virus-resistant varieties. Control whitefly populations with appropriate insecticides or traps. Use reflective mulches.",
	},
	classifier.TomatoMosaicVirus: {
		Treatment:  "No cure exists for infected plants. Remove and destroy infected plants to prevent spread.",
		Prevention: "Use virus-free seeds and transplants. Wash hands after handling tobacco products before touching plants. Disinfect tools.",
	},
	classifier.PowderyMildew: {
		Treatment:  "Apply fungicides with sulfur or potassium bicarbonate. Remove heavily infected leaves.",
		Prevention: "Ensure good air circulation. Avoid overhead watering. Plant resistant varieties if available.",
	},
	classifier.Healthy: {
		Treatment:  "No treatment needed. Continue regular care.",
		Prevention: "Maintain regular watering, proper spacing, and good soil nutrition. Monitor for early signs of pests or diseases.",
	},
	classifier.NotTomatoLeaf: {
		Treatment:  "Not applicable. The image does not appear to be a tomato leaf.",
		Prevention: "Please upload an image of a tomato leaf for accurate disease diagnosis.",
	},
}

var recommendationsSi = map[classifier.DiseaseID]Recommendation{
	classifier.BacterialSpot: {
		Treatment:  "ලේබල් උපදෙස් අනුව තඹ පාදක බැක්ටීරියා නාශක යොදන්න. ආසාදිත කොළ සහ පලතුරු ඉවත් කර විනාශ කරන්න.",
		Prevention: "රෝග රහිත බීජ සහ පැළ භාවිතා කරන්න. ඉහළින් වාරි ජලය දැමීමෙන් වළකින්න. සොලනේසස් නොවන බෝග සමඟ බෝග මාරු කිරීම භාවිතා කරන්න.",
	},
	classifier.EarlyBlight: {
		Treatment:  "ක්ලෝරෝතලොනිල්, මැන්කොසෙබ්, හෝ තඹ අඩංගු දිලීර නාශක යොදන්න. ව්‍යාප්ත වීම වැළැක්වීමට ආසාදිත කොළ ඉවත් කරන්න.",
		Prevention: "වාතය ගමන් කිරීම සඳහා නිසි පැළ පරතරය සහතික කරන්න. පස් ඉසිරීම වැළැක්වීමට මල්ච් භාවිතා කරන්න. කොළ නොව පැළවල පාදම වෙත ජලය දමන්න.",
	},
	classifier.LateBlight: {
		Treatment:  "තඹ පාදක දිලීර නාශක හෝ විශේෂිත පසු පිළිස්සුම් දිලීර නාශක යොදන්න. ආසාදිත පැළ වහාම ඉවත් කර විනාශ කරන්න.",
		Prevention: "ප්‍රතිරෝධී ප්‍රභේද සිටුවන්න. පත්‍ර තෙමීමෙන් වළකින්න. වලන්ටියර් තක්කාලි පැළ විනාශ කරන්න. හොඳින් ජලය බැස යන පසෙහි සිටුවන්න.",
	},
	classifier.LeafMold: {
		Treatment:  "ක්ලෝරෝතලොනිල් සහිත දිලීර නාශක යොදන්න. පැළ වටා වාතය ගමන් කිරීම වැඩි දියුණු කරන්න.",
		Prevention: "පැළ අතර දුර වැඩි කරන්න. හරිතාගාර තුළ ආර්ද්‍රතාවය අඩු කරන්න. ආසාදිත කොළ ඉවත් කර විනාශ කරන්න.",
	},
	classifier.SeptoriaLeafSpot: {
		Treatment:  "ක්ලෝරෝතලොනිල් හෝ තඹ සහිත දිලීර නාශක යොදන්න. ආසාදිත කොළ වහාම ඉවත් කරන්න.",
		Prevention: "පස් ඉසිරීම වැළැක්වීමට පැළ වටා මල්ච් කරන්න. බිංදු වාරි ජලය භාවිතා කරන්න. බෝග මාරුව භාවිතා කරන්න.",
	},
	classifier.SpiderMites: {
		Treatment:  "කෘමි නාශක සබන් හෝ නීම් තෙල් යොදන්න. දැඩි ආසාදන සඳහා සුදුසු මයිටිසයිඩ භාවිතා කරන්න.",
		Prevention: "මයිට් දිරිමත් නොකිරීමට නිතිපතා පැළවලට ජලය ඉසින්න. දඩයම් මයිට් හඳුන්වා දෙන්න. නිසි ජල සම්පාදනය සහ පෝෂක මගින් පැළ ශක්තිය පවත්වා ගන්න.",
	},
	classifier.TargetSpot: {
		Treatment:  "ක්ලෝරෝතලොනිල් හෝ මැන්කොසෙබ් සහිත දිලීර නාශක යොදන්න. ආසාදිත කොළ ඉවත් කරන්න.",
		Prevention: "ඉහළින් වාරි ජලය දැමීමෙන් වළකින්න. හොඳ වාතය ගමන් කිරීම පවත්වා ගන්න. බෝග මාරුව භාවිතා කරන්න.",
	},
	classifier.YellowLeafCurl: {
		Treatment:  "ආසාදිත පැළ සඳහා ප්‍රතිකාරයක් නොමැත. ව්‍යාප්ත වීම වැළැක්වීමට ආසාදිත පැළ ඉවත් කර විනාශ කරන්න.",
		Prevention: "වෛරස් ප්‍රතිරෝධී ප්‍රභේද භාවිතා කරන්න. සුදුසු කෘමිනාශක හෝ උගුල් මගින් සුදු මැස්සන් පාලනය කරන්න. පරාවර්තක මල්ච් භාවිතා කරන්න.",
	},
	classifier.TomatoMosaicVirus: {
		Treatment:  "ආසාදිත පැළ සඳහා ප්‍රතිකාරයක් නොමැත. ව්‍යාප්ත වීම වැළැක්වීමට ආසාදිත පැළ ඉවත් කර විනාශ කරන්න.",
		Prevention: "වෛරස් රහිත බීජ සහ පැළ භාවිතා කරන්න. පැළ ස්පර්ශ කිරීමට පෙර දුම්කොළ නිෂ්පාදන හැසිරවීමෙන් පසු අත් සෝදන්න. මෙවලම් විෂබීජහරණය කරන්න.",
	},
	classifier.PowderyMildew: {
		Treatment:  "සල්ෆර් හෝ පොටෑසියම් බයිකාබනේට් සහිත දිලීර නාශක යොදන්න. දැඩි ලෙස ආසාදිත කොළ ඉවත් කරන්න.",
		Prevention: "හොඳ වාතය ගමන් කිරීම සහතික කරන්න. ඉහළින් ජලය දැමීමෙන් වළකින්න. හැකි නම් ප්‍රතිරෝධී ප්‍රභේද සිටුවන්න.",
	},
	classifier.Healthy: {
		Treatment:  "ප්‍රතිකාර අවශ්‍ය නැත. නිතිපතා රැකබලා ගැනීම කරගෙන යන්න.",
		Prevention: "නිතිපතා ජලය දැමීම, නිසි පරතරයක් තබා ගැනීම, සහ හොඳ පස පෝෂණය පවත්වා ගන්න. පළිබෝධ හෝ රෝග පිළිබඳ මුල් සලකුණු සඳහා නිරීක්ෂණය කරන්න.",
	},
	classifier.NotTomatoLeaf: {
		Treatment:  "අදාළ නොවේ. රූපය තක්කාලි කොළයක් ලෙස නොපෙනේ.",
		Prevention: "නිවැරදි රෝග විනිශ්චයක් සඳහා කරුණාකර තක්කාලි කොළයක රූපයක් උඩුගත කරන්න.",
	},
}

var defaultRecommendationEn = Recommendation{
	Treatment:  "Consult with an agricultural expert for specific recommendations.",
	Prevention: "Practice good crop management including proper spacing, watering, and crop rotation.",
}

var defaultRecommendationSi = Recommendation{
	Treatment:  "විශේෂිත නිර්දේශ සඳහා කෘෂිකාර්මික විශේෂඥයෙකුගෙන් උපදෙස් ලබා ගන්න.",
	Prevention: "නිසි පරතරය, ජලය දැමීම, සහ බෝග මාරුව ඇතුළුව හොඳ බෝග කළමනාකරණ ක්‍රම අනුගමනය කරන්න.",
}

var descriptionsEn = map[classifier.DiseaseID]string{
	classifier.BacterialSpot:     "Bacterial spot is caused by Xanthomonas species. It appears as small, water-soaked spots that enlarge and turn dark brown to black with a yellow halo. It can affect leaves, stems, and fruits of tomato plants.",
	classifier.EarlyBlight:       "Early blight is caused by the fungus Alternaria solani. It appears as dark brown spots with concentric rings, forming a target-like pattern. The disease typically affects older leaves first and can spread to stems and fruits.",
	classifier.LateBlight:        "Late blight is caused by the water mold Phytophthora infestans. It appears as dark, water-soaked lesions on leaves that quickly enlarge and turn brown. White, fuzzy growth may appear on the undersides of leaves in humid conditions.",
	classifier.LeafMold:          "Leaf mold is caused by the fungus Passalora fulva. It appears as pale green or yellow spots on the upper leaf surface with olive-green to grayish-brown fuzzy mold on the undersides. It thrives in humid conditions.",
	classifier.SeptoriaLeafSpot:  "Septoria leaf spot is caused by the fungus Septoria lycopersici. It appears as numerous small, circular spots with dark borders and light gray centers. It typically begins on the lower leaves and moves upward as the disease progresses.",
	classifier.SpiderMites:       "Two-spotted spider mites cause tiny yellow or white speckles on leaves. Severe infestations lead to leaf yellowing, webbing on the undersides of leaves, and eventual leaf drop. Plants become stunted and may die if the infestation is severe.",
	classifier.TargetSpot:        "Target spot is caused by the fungus Corynespora cassiicola. It appears as brown circular spots with concentric rings resembling a target or bullseye. It can affect leaves, stems, and fruits of tomato plants.",
	classifier.YellowLeafCurl:    "TYLCV is transmitted by whiteflies. Infected plants show upward curling of leaves, yellowing leaf edges, stunted growth, and flower drop. This viral disease can cause significant yield loss and there is no cure for infected plants.",
	classifier.TomatoMosaicVirus: "Tomato mosaic virus appears as mottled light and dark green or yellow areas on leaves. Leaves may be curled, wrinkled, or smaller than normal. The virus can be transmitted through infected seeds, plants, and even tobacco products.",
	classifier.PowderyMildew:     "Powdery mildew appears as white powdery spots on the upper surfaces of leaves. These spots gradually spread to cover the entire leaf surface. Severe infections can cause leaf yellowing, distortion, and premature leaf drop.",
	classifier.Healthy:           "This plant appears healthy with no visible signs of disease. Healthy tomato leaves are typically deep green, with a slightly fuzzy texture and a distinct tomato smell.",
	classifier.NotTomatoLeaf:     "This image does not appear to be a tomato leaf. Please submit an image of a tomato leaf for accurate disease detection and recommendations.",
}

var descriptionsSi = map[classifier.DiseaseID]string{
	classifier.BacterialSpot:     "බැක්ටීරියා පැල්ලම Xanthomonas විශේෂ මගින් ඇති කරයි. එය කුඩා, ජලයෙන් පෙඟුණු පැල්ලම් ලෙස දිස් වන අතර, ඒවා විශාල වී කහ වළලු සහිත අඳුරු දුඹුරු සිට කළු පැහැයට හැරේ. එය තක්කාලි පැළවල කොළ, කඳන්, සහ පලතුරු වලට බලපෑම් කළ හැකිය.",
	classifier.EarlyBlight:       "මුල් අදියරේ පිළිස්සුම Alternaria solani දිලීරය මගින් ඇති කරයි. එය වටයාකාර වලල්ලන් සහිත අඳුරු දුඹුරු පැල්ලම් ලෙස දිස් වන අතර, ඉලක්කයක් වැනි රටාවක් සාදයි. රෝගය සාමාන්‍යයෙන් වයස්ගත කොළ මුලින්ම ආක්‍රමණය කරන අතර එය කඳන් සහ පලතුරු වලටද පැතිරිය හැකිය.",
	classifier.LateBlight:        "පසු අදියරේ පිළිස්සුම Phytophthora infestans නම් ජල පූස මගින් ඇති කරයි. එය කොළ මත අඳුරු, ජලයෙන් පෙඟුණු තුවාල ලෙස දිස් වන අතර ඒවා ඉක්මනින් විශාල වී දුඹුරු පැහැයට හැරේ. තෙත සහිත තත්ත්ව යටතේ කොළවල යටි පැත්තේ සුදු, පූර්ණ වර්ධනයක් දිස් විය හැකිය.",
	classifier.LeafMold:          "කොළ පූස් Passalora fulva දිලීරය මගින් ඇති කරයි. එය ඉහළ කොළ මතුපිට පාට අළු හෝ කහ පැල්ලම් ලෙස දිස් වන අතර, යටි පැත්තේ ඔලිව්-කොළ සිට අළු-දුඹුරු පැහැති පූර්ණ පූස් ඇත. එය අධික තෙත සහිත තත්ත්ව යටතේ වර්ධනය වේ.",
	classifier.SeptoriaLeafSpot:  "සෙප්ටෝරියා කොළ පැල්ලම Septoria lycopersici දිලීරය මගින් ඇති කරයි. එය අඳුරු මායිම් සහ ලා අළු මධ්‍යස්ථාන සහිත බොහෝ කුඩා, වටයාකාර පැල්ලම් ලෙස දිස් වේ. එය සාමාන්‍යයෙන් පහළ කොළ වලින් ආරම්භ වන අතර රෝගය වර්ධනය වන විට ඉහළට ගමන් කරයි.",
	classifier.SpiderMites:       "ද්වි-ලක්ෂිත මකුළු මයිට් කොළ මත කුඩා කහ හෝ සුදු පැල්ලම් ඇති කරයි. දැඩි ආසාදන මගින් කොළ කහ වීම, කොළවල යටි පැත්තේ දැල් ඇතිවීම, සහ අවසානයේ කොළ වැටීම සිදු වේ. ආසාදනය දැඩි නම් පැළ වර්ධනය අඩාල වී මිය යා හැකිය.",
	classifier.TargetSpot:        "ඉලක්ක පැල්ලම Corynespora cassiicola දිලීරය මගින් ඇති කරයි. එය ඉලක්කයක් හෝ ඇස් ඉලක්කයක් වැනි වටයාකාර වලලු සහිත දුඹුරු වටයාකාර පැල්ලම් ලෙස දිස් වේ. එය තක්කාලි පැළවල කොළ, කඳන්, සහ පලතුරු වලට බලපෑම් කළ හැකිය.",
	classifier.YellowLeafCurl:    "TYLCV සුදු මැස්සන් මගින් සම්ප්‍රේෂණය වේ. ආසාදිත පැළවල කොළ ඉහළට නැවීම, කොළ දාර කහ වීම, වර්ධනය අඩාල වීම, සහ මල් වැටීම දක්නට ලැබේ. මෙම වෛරස් රෝගය සැලකිය යුතු අස්වැන්න අහිමි වීමට හේතු විය හැකි අතර ආසාදිත පැළ සඳහා ප්‍රතිකාරයක් නොමැත.",
	classifier.TomatoMosaicVirus: "තක්කාලි මොසෙයික් වෛරසය කොළ මත ලා හා අඳුරු කොළ හෝ කහ ප්‍රදේශ ලෙස දිස් වේ. කොළ නැවී, රැලි ගැසී, හෝ සාමාන්‍යයට වඩා කුඩා විය හැකිය. වෛරසය ආසාදිත බීජ, පැළ, සහ දුම්කොළ නිෂ්පාදන මගින් පවා සම්ප්‍රේෂණය විය හැකිය.",
	classifier.PowderyMildew:     "කුඩු පූස් කොළවල ඉහළ මතුපිට සුදු කුඩු පැල්ලම් ලෙස දිස් වේ. මෙම පැල්ලම් ක්‍රමයෙන් මුළු කොළ මතුපිට ආවරණය කිරීමට පැතිරේ. දැඩි ආසාදන මගින් කොළ කහ වීම, විකෘති වීම, සහ අකාලයේ කොළ වැටීම ඇති විය හැකිය.",
	classifier.Healthy:           "මෙම පැළය රෝග ලක්ෂණ කිසිවක් නොපෙන්වා සෞඛ්‍ය සම්පන්න ලෙස පෙනේ. සෞඛ්‍ය සම්පන්න තක්කාලි කොළ සාමාන්‍යයෙන් ගැඹුරු කොළ පැහැයෙන් යුක්ත වන අතර, මඳක් රෝම සහිත මතුපිටක් සහ විශේෂිත තක්කාලි සුවඳක් ඇත.",
	classifier.NotTomatoLeaf:     "මෙම රූපය තක්කාලි කොළයක් ලෙස නොපෙනේ. නිවැරදි රෝග හඳුනා ගැනීමක් සඳහා කරුණාකර තක්කාලි කොළයක රූපයක් ඉදිරිපත් කරන්න.",
}

const defaultDescriptionEn = "Tomato plants are susceptible to various diseases that can affect their leaves, stems, and fruits. Early detection and proper management are key to preventing crop losses."

const defaultDescriptionSi = "තක්කාලි ශාක විවිධ රෝගවලට ලක්විය හැකි අතර, එය කොළ, කඳන් සහ පලතුරු වලට බලපෑම් ඇති කරයි. කල්තියා හඳුනාගැනීම සහ නිසි කළමනාකරණය අස්වැන්න අහිමි වීම වැළැක්වීම සඳහා යතුරකි."
