package store

import "github.com/bdpublic/updates-api/models"

func seed(title, summary, url, source, category, date string) models.NewUpdate {
	return models.NewUpdate{
		Title:    title,
		Summary:  models.StringPtr(summary),
		URL:      url,
		Source:   models.StringPtr(source),
		Category: models.StringPtr(category),
		Date:     models.StringPtr(date),
	}
}

// seedUpdates is the demo dataset loaded into an empty store.
var seedUpdates = []models.NewUpdate{
	seed("বিসিএস ৪৫তম পরীক্ষার বিজ্ঞপ্তি", "বাংলাদেশ সিভিল সার্ভিস ৪৫তম বার্ষিক পরীক্ষার বিজ্ঞপ্তি প্রকাশিত হয়েছে", "https://www.bpsc.gov.bd", "বিসিএস কমিশন", "job", "২০২৪-০১-১৫"),
	seed("সোনালী ব্যাংকে নিয়োগ", "সোনালী ব্যাংক লিমিটেডে সহকারী অফিসার পদে নিয়োগ", "https://www.sonalibank.com.bd", "সোনালী ব্যাংক", "job", "২০২৪-০১-১৪"),
	seed("এইচএসসি পরীক্ষার রুটিন", "২০২৪ সালের এইচএসসি পরীক্ষার রুটিন প্রকাশ", "http://www.educationboardresults.gov.bd", "শিক্ষা বোর্ড", "education", "২০২৪-০১-১৩"),
	seed("জাতীয় বিশ্ববিদ্যালয় পরীক্ষা স্থগিত", "অনার্স চতুর্থ বর্ষের পরীক্ষা এক সপ্তাহ পিছানো হয়েছে", "https://www.nu.ac.bd", "জাতীয় বিশ্ববিদ্যালয়", "education", "২০২৪-০১-১২"),
	seed("২০২৪ সালের ছুটির তালিকা", "সরকারি ছুটির তালিকা প্রকাশিত হয়েছে", "https://cabinet.gov.bd", "মন্ত্রিপরিষদ বিভাগ", "government", "২০২৪-০১-১১"),
	seed("ইন্টারনেট ডাটা দাম কমানো", "মোবাইল ইন্টারনেট ডাটা প্যাকের দাম কমানোর সিদ্ধান্ত", "https://www.btrc.gov.bd", "বিটিআরসি", "hot", "২০২৪-০১-১০"),
	seed("বেসরকারি কলেজের বেতন নির্ধারণ", "বেসরকারি কলেজের বেতন নির্ধারণ সংক্রান্ত নোটিশ", "https://moedu.gov.bd", "শিক্ষা মন্ত্রণালয়", "education", "২০২৪-০১-০৯"),
	seed("বিদ্যুৎ বিলের হার পুনঃনির্ধারণ", "বিদ্যুৎ বিভাগ বিদ্যুৎ বিলের হার পুনঃনির্ধারণ করেছে", "https://powerdivision.gov.bd", "বিদ্যুৎ বিভাগ", "government", "২০২৪-০১-০৮"),
}
