package devicemap

// aliasEntry pairs a source alias with its canonical English device name.
type aliasEntry struct {
	alias     string
	canonical string
}

// aliasGroup carries the secondary alias list for one canonical device
// (model-year variants, brand names and the like).
type aliasGroup struct {
	canonical string
	aliases   []string
}

// deviceMappings is the curated alias dictionary. Order matters: entries are
// inserted into the shared index in this order, so it fixes both the
// collision winner (last write wins) and the tie-break order for fuzzy
// candidates with equal scores.
var deviceMappings = []aliasEntry{
	// Nintendo Switch
	{"スイッチ", "Nintendo Switch"},
	{"すいっち", "Nintendo Switch"},
	{"ニンテンドースイッチ", "Nintendo Switch"},
	{"ニンテンドーswitch", "Nintendo Switch"},
	{"任天堂スイッチ", "Nintendo Switch"},
	{"任天堂switch", "Nintendo Switch"},
	{"switch", "Nintendo Switch"},
	{"ns", "Nintendo Switch"},
	{"ニンテンドー", "Nintendo Switch"},
	{"にんてんどー", "Nintendo Switch"},
	{"任天堂", "Nintendo Switch"},

	// iPhone
	{"アイフォン", "iPhone"},
	{"あいふォん", "iPhone"},
	{"アイフォーン", "iPhone"},
	{"iphone", "iPhone"},
	{"iphon", "iPhone"},
	{"アイホン", "iPhone"},
	{"あいほん", "iPhone"},
	{"愛phone", "iPhone"},

	// PlayStation
	{"プレイステーション", "PlayStation"},
	{"プレステ", "PlayStation"},
	{"ぷれすて", "PlayStation"},
	{"playstation", "PlayStation"},
	{"ps", "PlayStation"},
	{"ピーエス", "PlayStation"},
	{"プレステーション", "PlayStation"},

	// PlayStation 5
	{"プレイステーション5", "PlayStation 5"},
	{"プレステ5", "PlayStation 5"},
	{"ps5", "PlayStation 5"},
	{"ピーエス5", "PlayStation 5"},
	{"プレイステーション５", "PlayStation 5"},
	{"プレステ５", "PlayStation 5"},
	{"ピーエス５", "PlayStation 5"},

	// PlayStation 4
	{"プレイステーション4", "PlayStation 4"},
	{"プレステ4", "PlayStation 4"},
	{"ps4", "PlayStation 4"},
	{"ピーエス4", "PlayStation 4"},
	{"プレイステーション４", "PlayStation 4"},
	{"プレステ４", "PlayStation 4"},
	{"ピーエス４", "PlayStation 4"},

	// Xbox
	{"エックスボックス", "Xbox"},
	{"えっくすぼっくす", "Xbox"},
	{"xbox", "Xbox"},
	{"エクボ", "Xbox"},
	{"えくぼ", "Xbox"},

	// Laptop
	{"ラップトップ", "Laptop"},
	{"らっぷとっぷ", "Laptop"},
	{"laptop", "Laptop"},
	{"ノートパソコン", "Laptop"},
	{"ノートpc", "Laptop"},
	{"ノート", "Laptop"},
	{"のーと", "Laptop"},
	{"ノーパソ", "Laptop"},
	{"のーぱそ", "Laptop"},

	// Desktop PC
	{"デスクトップ", "Desktop PC"},
	{"でするとっぷ", "Desktop PC"},
	{"desktop", "Desktop PC"},
	{"パソコン", "Desktop PC"},
	{"ぱそこん", "Desktop PC"},
	{"pc", "Desktop PC"},
	{"ピーシー", "Desktop PC"},
	{"ぴーしー", "Desktop PC"},
	{"コンピューター", "Desktop PC"},
	{"こんぴゅーたー", "Desktop PC"},

	// Smartphone (generic)
	{"スマートフォン", "Smartphone"},
	{"すまーとふぉん", "Smartphone"},
	{"smartphone", "Smartphone"},
	{"スマホ", "Smartphone"},
	{"すまほ", "Smartphone"},
	{"携帯", "Smartphone"},
	{"けいたい", "Smartphone"},
	{"携帯電話", "Smartphone"},
	{"けいたいでんわ", "Smartphone"},

	// Android
	{"アンドロイド", "Android"},
	{"あんどろいど", "Android"},
	{"android", "Android"},
	{"アンドロ", "Android"},
	{"あんどろ", "Android"},

	// iPad
	{"アイパッド", "iPad"},
	{"あいぱっど", "iPad"},
	{"ipad", "iPad"},
	{"アイパド", "iPad"},
	{"あいぱど", "iPad"},

	// Tablet
	{"タブレット", "Tablet"},
	{"たぶれっと", "Tablet"},
	{"tablet", "Tablet"},
	{"タブ", "Tablet"},
	{"たぶ", "Tablet"},

	// MacBook
	{"マックブック", "MacBook"},
	{"まっくぶっく", "MacBook"},
	{"macbook", "MacBook"},
	{"マック", "MacBook"},
	{"まっく", "MacBook"},
	{"mac", "MacBook"},

	// Surface
	{"サーフェス", "Surface"},
	{"さーふぇす", "Surface"},
	{"surface", "Surface"},

	// Gaming console (generic)
	{"ゲーム機", "Gaming Console"},
	{"げーむき", "Gaming Console"},
	{"ゲーム", "Gaming Console"},
	{"げーむ", "Gaming Console"},
	{"ゲームコンソール", "Gaming Console"},
	{"げーむこんそーる", "Gaming Console"},

	// Headphones / earphones
	{"ヘッドフォン", "Headphones"},
	{"へっどふぉん", "Headphones"},
	{"headphones", "Headphones"},
	{"ヘッドホン", "Headphones"},
	{"へっどほん", "Headphones"},
	{"イヤホン", "Earphones"},
	{"いやほん", "Earphones"},
	{"earphones", "Earphones"},

	// Smart watch
	{"スマートウォッチ", "Smart Watch"},
	{"すまーとうぉっち", "Smart Watch"},
	{"smartwatch", "Smart Watch"},
	{"スマウォ", "Smart Watch"},
	{"すまうぉ", "Smart Watch"},
	{"腕時計", "Smart Watch"},
	{"うでどけい", "Smart Watch"},

	// Apple Watch
	{"アップルウォッチ", "Apple Watch"},
	{"あっぷるうぉっち", "Apple Watch"},
	{"apple watch", "Apple Watch"},
	{"applewatch", "Apple Watch"},

	// AirPods
	{"エアポッズ", "AirPods"},
	{"えあぽっず", "AirPods"},
	{"airpods", "AirPods"},
	{"エアポ", "AirPods"},
	{"えあぽ", "AirPods"},

	// TV
	{"テレビ", "TV"},
	{"てれび", "TV"},
	{"tv", "TV"},
	{"ティーブイ", "TV"},
	{"てぃーぶい", "TV"},
	{"スマートテレビ", "Smart TV"},
	{"すまーとてれび", "Smart TV"},
	{"smart tv", "Smart TV"},

	// Camera
	{"カメラ", "Camera"},
	{"かめら", "Camera"},
	{"camera", "Camera"},
	{"デジカメ", "Digital Camera"},
	{"でじかめ", "Digital Camera"},
	{"デジタルカメラ", "Digital Camera"},
	{"でじたるかめら", "Digital Camera"},

	// Router
	{"ルーター", "Router"},
	{"るーたー", "Router"},
	{"router", "Router"},
	{"ルータ", "Router"},
	{"るーた", "Router"},
	{"無線ルーター", "Wireless Router"},
	{"むせんるーたー", "Wireless Router"},

	// VR headset
	{"VRヘッドセット", "VR Headset"},
	{"vrへっどせっと", "VR Headset"},
	{"vr headset", "VR Headset"},
	{"バーチャルリアリティ", "VR Headset"},
	{"ばーちゃるりありてぃ", "VR Headset"},
	{"VR", "VR Headset"},
	{"vr", "VR Headset"},
	{"ブイアール", "VR Headset"},
	{"ぶいあーる", "VR Headset"},
}

// deviceAliases holds additional spellings keyed by canonical name.
// These feed the index but not the keyword set.
var deviceAliases = []aliasGroup{
	{"Nintendo Switch", []string{"switch lite", "スイッチライト", "すいっちらいと", "ライト"}},
	{"iPhone", []string{
		"iphone 15", "iphone 14", "iphone 13", "iphone 12", "iphone 11",
		"アイフォン15", "アイフォン14", "アイフォン13", "アイフォン12", "アイフォン11",
	}},
	{"PlayStation 5", []string{"ps5 pro", "プレステ5プロ", "ps5プロ"}},
	{"Xbox", []string{"xbox series x", "xbox series s", "エックスボックスシリーズ"}},
	{"Laptop", []string{
		"thinkpad", "シンクパッド", "lenovo", "レノボ", "dell", "デル",
		"hp", "エイチピー", "asus", "エイスース",
	}},
}
