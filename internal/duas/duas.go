// Package duas serves the fixed list of Ramadan devotional quotes.
package duas

import (
	"math/rand"

	"github.com/iftarbd/ramadan-api/internal/model"
)

var ramadanDuas = []model.Dua{
	{
		Arabic:    "اللَّهُمَّ إِنِّي أَسْأَلُكَ بِرَحْمَتِكَ الَّتِي وَسِعَتْ كُلَّ شَيْءٍ أَنْ تَغْفِرَ لِي",
		Bangla:    "হে আল্লাহ! আপনার রহমতের উসিলায় যা সব কিছুকে পরিব্যাপ্ত করে, আমি আপনার কাছে ক্ষমা প্রার্থনা করছি।",
		English:   "O Allah, I ask You by Your mercy which encompasses all things, that You forgive me.",
		Reference: "দোয়া ইফতার",
	},
	{
		Arabic:    "اللَّهُمَّ لَكَ صُمْتُ وَعَلَى رِزْقِكَ أَفْطَرْتُ",
		Bangla:    "হে আল্লাহ! আমি আপনার জন্য রোজা রেখেছি এবং আপনার দেওয়া রিযিক দিয়ে ইফতার করছি।",
		English:   "O Allah, I fasted for You and I break my fast with Your provision.",
		Reference: "আবু দাউদ",
	},
	{
		Arabic:    "ذَهَبَ الظَّمَأُ وَابْتَلَّتِ الْعُرُوقُ وَثَبَتَ الأَجْرُ إِنْ شَاءَ اللَّهُ",
		Bangla:    "পিপাসা চলে গেল, শিরা-উপশিরা সিক্ত হল এবং সওয়াব স্থির হল, ইনশাআল্লাহ।",
		English:   "Thirst has gone, the veins are moist, and the reward is confirmed, if Allah wills.",
		Reference: "আবু দাউদ",
	},
	{
		Arabic:    "اللَّهُمَّ إِنِّي أَسْأَلُكَ الْجَنَّةَ وَمَا قَرَّبَ إِلَيْهَا مِنْ قَوْلٍ أَوْ عَمَلٍ",
		Bangla:    "হে আল্লাহ! আমি আপনার কাছে জান্নাত প্রার্থনা করছি এবং সেই সকল কথা ও কাজ যা জান্নাতের নিকটবর্তী করে।",
		English:   "O Allah, I ask You for Paradise and for words and deeds that bring me closer to it.",
		Reference: "তিরমিজি",
	},
	{
		Arabic:    "رَبَّنَا آتِنَا فِي الدُّنْيَا حَسَنَةً وَفِي الْآخِرَةِ حَسَنَةً وَقِنَا عَذَابَ النَّارِ",
		Bangla:    "হে আমাদের রব! আমাদের দুনিয়াতে কল্যাণ দিন এবং আখিরাতেও কল্যাণ দিন এবং আমাদের জাহান্নামের শাস্তি থেকে রক্ষা করুন।",
		English:   "Our Lord! Give us in this world good, and in the Hereafter good, and save us from the punishment of the Fire.",
		Reference: "সূরা বাকারা, ২:২০১",
	},
}

// All returns every dua in fixed order.
func All() []model.Dua {
	return ramadanDuas
}

// Random returns one dua picked uniformly.
func Random() model.Dua {
	return ramadanDuas[rand.Intn(len(ramadanDuas))]
}
