package districts

import "github.com/iftarbd/ramadan-api/internal/model"

// All 64 districts of Bangladesh, grouped by division. Order is the
// registry's canonical order and is preserved by listing operations.
var bangladeshDistricts = []model.District{
	{ID: "dhaka", Name: "ঢাকা", NameEn: "Dhaka", Lat: 23.8103, Lon: 90.4125, Division: "ঢাকা"},
	{ID: "faridpur", Name: "ফরিদপুর", NameEn: "Faridpur", Lat: 23.6071, Lon: 89.8422, Division: "ঢাকা"},
	{ID: "gazipur", Name: "গাজীপুর", NameEn: "Gazipur", Lat: 23.9999, Lon: 90.4203, Division: "ঢাকা"},
	{ID: "gopalganj", Name: "গোপালগঞ্জ", NameEn: "Gopalganj", Lat: 23.0055, Lon: 89.8268, Division: "ঢাকা"},
	{ID: "kishoreganj", Name: "কিশোরগঞ্জ", NameEn: "Kishoreganj", Lat: 24.4447, Lon: 90.7761, Division: "ঢাকা"},
	{ID: "madaripur", Name: "মাদারীপুর", NameEn: "Madaripur", Lat: 23.1645, Lon: 90.1896, Division: "ঢাকা"},
	{ID: "manikganj", Name: "মানিকগঞ্জ", NameEn: "Manikganj", Lat: 23.8644, Lon: 90.0008, Division: "ঢাকা"},
	{ID: "munshiganj", Name: "মুন্সিগঞ্জ", NameEn: "Munshiganj", Lat: 23.5422, Lon: 90.5301, Division: "ঢাকা"},
	{ID: "narayanganj", Name: "নারায়ণগঞ্জ", NameEn: "Narayanganj", Lat: 23.6213, Lon: 90.4954, Division: "ঢাকা"},
	{ID: "narsingdi", Name: "নরসিংদী", NameEn: "Narsingdi", Lat: 23.9206, Lon: 90.7177, Division: "ঢাকা"},
	{ID: "rajbari", Name: "রাজবাড়ী", NameEn: "Rajbari", Lat: 23.7575, Lon: 89.6426, Division: "ঢাকা"},
	{ID: "shariatpur", Name: "শরীয়তপুর", NameEn: "Shariatpur", Lat: 23.2423, Lon: 90.3500, Division: "ঢাকা"},
	{ID: "tangail", Name: "টাঙ্গাইল", NameEn: "Tangail", Lat: 24.2513, Lon: 89.9167, Division: "ঢাকা"},

	{ID: "chittagong", Name: "চট্টগ্রাম", NameEn: "Chittagong", Lat: 22.3569, Lon: 91.7832, Division: "চট্টগ্রাম"},
	{ID: "bandarban", Name: "বান্দরবান", NameEn: "Bandarban", Lat: 22.1953, Lon: 92.2183, Division: "চট্টগ্রাম"},
	{ID: "brahmanbaria", Name: "ব্রাহ্মণবাড়িয়া", NameEn: "Brahmanbaria", Lat: 23.9608, Lon: 91.1115, Division: "চট্টগ্রাম"},
	{ID: "chandpur", Name: "চাঁদপুর", NameEn: "Chandpur", Lat: 23.2336, Lon: 90.6636, Division: "চট্টগ্রাম"},
	{ID: "comilla", Name: "কুমিল্লা", NameEn: "Comilla", Lat: 23.4683, Lon: 91.1787, Division: "চট্টগ্রাম"},
	{ID: "cox_bazar", Name: "কক্সবাজার", NameEn: "Cox's Bazar", Lat: 21.4272, Lon: 92.0058, Division: "চট্টগ্রাম"},
	{ID: "feni", Name: "ফেনী", NameEn: "Feni", Lat: 23.0158, Lon: 91.3975, Division: "চট্টগ্রাম"},
	{ID: "khagrachhari", Name: "খাগড়াছড়ি", NameEn: "Khagrachhari", Lat: 23.1071, Lon: 91.9697, Division: "চট্টগ্রাম"},
	{ID: "lakshmipur", Name: "লক্ষ্মীপুর", NameEn: "Lakshmipur", Lat: 22.9447, Lon: 90.8284, Division: "চট্টগ্রাম"},
	{ID: "noakhali", Name: "নোয়াখালী", NameEn: "Noakhali", Lat: 22.8696, Lon: 91.0997, Division: "চট্টগ্রাম"},
	{ID: "rangamati", Name: "রাঙ্গামাটি", NameEn: "Rangamati", Lat: 22.7324, Lon: 92.2985, Division: "চট্টগ্রাম"},

	{ID: "rajshahi", Name: "রাজশাহী", NameEn: "Rajshahi", Lat: 24.3636, Lon: 88.6241, Division: "রাজশাহী"},
	{ID: "bogra", Name: "বগুড়া", NameEn: "Bogra", Lat: 24.8465, Lon: 89.3772, Division: "রাজশাহী"},
	{ID: "joypurhat", Name: "জয়পুরহাট", NameEn: "Joypurhat", Lat: 25.0968, Lon: 89.0401, Division: "রাজশাহী"},
	{ID: "naogaon", Name: "নওগাঁ", NameEn: "Naogaon", Lat: 24.8091, Lon: 88.9445, Division: "রাজশাহী"},
	{ID: "natore", Name: "নাটোর", NameEn: "Natore", Lat: 24.4129, Lon: 89.0010, Division: "রাজশাহী"},
	{ID: "chapainawabganj", Name: "চাঁপাইনবাবগঞ্জ", NameEn: "Chapainawabganj", Lat: 24.5965, Lon: 88.2774, Division: "রাজশাহী"},
	{ID: "pabna", Name: "পাবনা", NameEn: "Pabna", Lat: 24.0064, Lon: 89.2372, Division: "রাজশাহী"},
	{ID: "sirajganj", Name: "সিরাজগঞ্জ", NameEn: "Sirajganj", Lat: 24.4535, Lon: 89.6167, Division: "রাজশাহী"},

	{ID: "khulna", Name: "খুলনা", NameEn: "Khulna", Lat: 22.8456, Lon: 89.5403, Division: "খুলনা"},
	{ID: "bagerhat", Name: "বাগেরহাট", NameEn: "Bagerhat", Lat: 22.6602, Lon: 89.7895, Division: "খুলনা"},
	{ID: "chuadanga", Name: "চুয়াডাঙ্গা", NameEn: "Chuadanga", Lat: 23.6401, Lon: 88.8557, Division: "খুলনা"},
	{ID: "jashore", Name: "যশোর", NameEn: "Jashore", Lat: 23.1749, Lon: 89.2038, Division: "খুলনা"},
	{ID: "jhenaidah", Name: "ঝিনাইদহ", NameEn: "Jhenaidah", Lat: 23.5528, Lon: 89.1573, Division: "খুলনা"},
	{ID: "kushtia", Name: "কুষ্টিয়া", NameEn: "Kushtia", Lat: 23.9017, Lon: 89.1212, Division: "খুলনা"},
	{ID: "magura", Name: "মাগুরা", NameEn: "Magura", Lat: 23.4873, Lon: 89.4199, Division: "খুলনা"},
	{ID: "meherpur", Name: "মেহেরপুর", NameEn: "Meherpur", Lat: 23.7792, Lon: 88.6473, Division: "খুলনা"},
	{ID: "narail", Name: "নড়াইল", NameEn: "Narail", Lat: 23.1639, Lon: 89.5041, Division: "খুলনা"},
	{ID: "shatkhira", Name: "সাতক্ষীরা", NameEn: "Satkhira", Lat: 22.7185, Lon: 89.0705, Division: "খুলনা"},

	{ID: "barisal", Name: "বরিশাল", NameEn: "Barisal", Lat: 22.7010, Lon: 90.3535, Division: "বরিশাল"},
	{ID: "barguna", Name: "বরগুনা", NameEn: "Barguna", Lat: 22.1591, Lon: 90.1241, Division: "বরিশাল"},
	{ID: "bhola", Name: "ভোলা", NameEn: "Bhola", Lat: 22.6884, Lon: 90.6485, Division: "বরিশাল"},
	{ID: "jhalokati", Name: "ঝালকাঠি", NameEn: "Jhalokati", Lat: 22.6425, Lon: 90.2002, Division: "বরিশাল"},
	{ID: "patuakhali", Name: "পটুয়াখালী", NameEn: "Patuakhali", Lat: 22.3596, Lon: 90.3290, Division: "বরিশাল"},
	{ID: "pirojpur", Name: "পিরোজপুর", NameEn: "Pirojpur", Lat: 22.5841, Lon: 89.9720, Division: "বরিশাল"},

	{ID: "sylhet", Name: "সিলেট", NameEn: "Sylhet", Lat: 24.8949, Lon: 91.8687, Division: "সিলেট"},
	{ID: "habiganj", Name: "হবিগঞ্জ", NameEn: "Habiganj", Lat: 24.3749, Lon: 91.4156, Division: "সিলেট"},
	{ID: "moulvibazar", Name: "মৌলভীবাজার", NameEn: "Moulvibazar", Lat: 24.4820, Lon: 91.7774, Division: "সিলেট"},
	{ID: "sunamganj", Name: "সুনামগঞ্জ", NameEn: "Sunamganj", Lat: 25.0715, Lon: 91.3992, Division: "সিলেট"},

	{ID: "rangpur", Name: "রংপুর", NameEn: "Rangpur", Lat: 25.7439, Lon: 89.2752, Division: "রংপুর"},
	{ID: "dinajpur", Name: "দিনাজপুর", NameEn: "Dinajpur", Lat: 25.6279, Lon: 88.6332, Division: "রংপুর"},
	{ID: "gaibandha", Name: "গাইবান্ধা", NameEn: "Gaibandha", Lat: 25.3295, Lon: 89.5425, Division: "রংপুর"},
	{ID: "kurigram", Name: "কুড়িগ্রাম", NameEn: "Kurigram", Lat: 25.8072, Lon: 89.6296, Division: "রংপুর"},
	{ID: "lalmonirhat", Name: "লালমনিরহাট", NameEn: "Lalmonirhat", Lat: 25.9172, Lon: 89.4459, Division: "রংপুর"},
	{ID: "nilphamari", Name: "নীলফামারী", NameEn: "Nilphamari", Lat: 25.9312, Lon: 88.8565, Division: "রংপুর"},
	{ID: "panchagarh", Name: "পঞ্চগড়", NameEn: "Panchagarh", Lat: 26.3411, Lon: 88.5545, Division: "রংপুর"},
	{ID: "thakurgaon", Name: "ঠাকুরগাঁও", NameEn: "Thakurgaon", Lat: 26.0336, Lon: 88.4676, Division: "রংপুর"},

	{ID: "mymensingh", Name: "ময়মনসিংহ", NameEn: "Mymensingh", Lat: 24.7471, Lon: 90.4203, Division: "ময়মনসিংহ"},
	{ID: "jamalpur", Name: "জামালপুর", NameEn: "Jamalpur", Lat: 24.9375, Lon: 89.9372, Division: "ময়মনসিংহ"},
	{ID: "netrokona", Name: "নেত্রকোণা", NameEn: "Netrokona", Lat: 24.8831, Lon: 90.7275, Division: "ময়মনসিংহ"},
	{ID: "sherpur", Name: "শেরপুর", NameEn: "Sherpur", Lat: 25.0205, Lon: 90.0175, Division: "ময়মনসিংহ"},
}
