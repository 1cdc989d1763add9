package keyword

// Seed returns the built-in table. Order matters, see Table.
func Seed() *Table {
	t, err := New(seedEntries, seedDefault)
	if err != nil {
		panic("keyword: invalid seed table: " + err.Error())
	}
	return t
}

const seedDefault = "هذا سؤال رائع! 🌟 أنا أتخصص في تعليم الأموال والأسهم للأطفال. هل يمكنك أن تسأل عن شيء متعلق بالمال أو الأسهم؟ مثل \"ما هي الأسهم؟\" أو \"كيف أوفر المال؟\" 💰📚"

var seedEntries = []Entry{
	{Key: "سيولة", Reply: "السيولة هي سهولة تحويل الأشياء إلى نقود! 💵 مثل بيع لعبتك بسرعة للحصول على نقود. البيت صعب تحويله لنقود (سيولة قليلة) لكن النقود في البنك سهل سحبها (سيولة عالية)! 🏦💰"},
	{Key: "مرحبا", Reply: "مرحباً بك! أنا مساعدك الذكي لتعلم الأسهم والمال بطريقة سهلة وممتعة! 🌟 اسألني أي سؤال عن المال!"},
	{Key: "ما هي الأسهم", Reply: "الأسهم هي مثل قطع صغيرة من الشركات! 🧩 عندما تشتري سهماً، تصبح مالكاً لجزء صغير من تلك الشركة. مثل لو كان لديك قطعة من كعكة كبيرة! 🍰"},
	{Key: "ما هو المال", Reply: "المال هو وسيلة نستخدمها لشراء الأشياء التي نحتاجها ونريدها! 💰 مثل الطعام والألعاب والكتب. يأتي من العمل والادخار! 🏦"},
	{Key: "كيف أوفر المال", Reply: "يمكنك توفير المال بوضع جزء من مصروفك في حصالة! 🐷 مثلاً، إذا أعطاك والداك 10 ريال، ضع ريالين في الحصالة واستخدم الباقي! 💡"},
	{Key: "ما هو الاستثمار", Reply: "الاستثمار مثل زراعة البذور! 🌱 تضع مالك في مكان آمن لينمو ويصبح أكبر مع الوقت، مثل الشجرة التي تكبر وتعطي ثماراً! 🌳🍎"},
	{Key: "تضارب", Reply: "التضارب هو شراء وبيع الأسهم بسرعة لربح سريع! 🎢 مثل شراء لعبة اليوم بـ10 ريال وبيعها غداً بـ15 ريال. لكن احذر! قد تنخفض لـ5 ريال! إنها مثل لعبة محفوفة بالمخاطر! 🎯⚠️"},
	{Key: "ما هو التداول", Reply: "التداول هو بيع وشراء الأسهم! 📈📉 مثل تبادل البطاقات مع أصدقائك، لكن بالأسهم! يحتاج صبر وتعلم كثير قبل أن تبدأ!"},
	{Key: "ما هي البورصة", Reply: "البورصة مثل سوق كبير للأسهم! 🏪 الناس يأتون ليشتروا ويبيعوا أجزاء من الشركات. مثل سوق الخضار لكن للأسهم! 📊"},
	{Key: "السلام عليكم", Reply: "وعليكم السلام ورحمة الله وبركاته! كيف يمكنني مساعدتك في تعلم الأموال اليوم؟ 😊"},
	{Key: "ما هو السهم", Reply: "السهم هو مثل تذكرة دخول لتصبح شريكاً في شركة! 🎫 كلما نجحت الشركة أكثر، كلما أصبحت تذكرتك أغلى! 💰"},
	{Key: "كيف أشتري أسهم", Reply: "لشراء الأسهم، تحتاج أولاً أن تكبر وتفتح حساباً في البنك أو شركة الوساطة. لكن يمكنك الآن أن تتعلم وتخطط! 📚✨"},
	{Key: "لماذا نوفر المال", Reply: "نوفر المال للأشياء المهمة في المستقبل! 🌟 مثل شراء لعبة غالية، أو الدراسة في الجامعة، أو حتى مساعدة الآخرين! ❤️"},
	{Key: "لماذا أستثمر", Reply: "نستثمر لأن المال الذي نتركه نائماً لا ينمو! 😴 لكن المال المستثمر يعمل لنا حتى ونحن نائمون! مثل النحلة التي تصنع العسل! 🐝🍯"},
	{Key: "هل الأسهم آمنة", Reply: "الأسهم مثل ركوب الأرجوحة! 🎢 أحياناً تصعد وأحياناً تنزل. لهذا نتعلم أولاً ونستثمر أموالاً قليلة فقط! الأمان يأتي من التعلم! 📖"},
	{Key: "ما هي المخاطر", Reply: "المخاطر مثل المطر! ☔ أحياناً تحدث، لكن إذا كنا مستعدين بالمظلة (التعلم والتخطيط)، لن نبتل كثيراً! 🌂"},
	{Key: "كيف أبدأ الادخار", Reply: "ابدأ بحصالة صغيرة! 🐷 ضع فيها ريالاً واحداً كل يوم، وستندهش كم ستجمع في الشهر! الادخار مثل لعبة ممتعة! 🎮"},
	{Key: "ما أهمية الادخار", Reply: "الادخار مثل المظلة في يوم ممطر! ☂️ يحمينا عندما نحتاج المال فجأة، ويساعدنا في تحقيق أحلامنا الكبيرة! ✨"},
	{Key: "أهلا", Reply: "أهلاً وسهلاً! هل تريد تعلم شيء جديد عن الأموال والأسهم؟ 🎈"},
}
