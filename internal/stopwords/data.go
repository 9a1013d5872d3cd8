package stopwords

// Per-language stopword corpora. Grounded on the NLTK stopword corpora
// the calou/prouste reference implementation consumes (src/extractor/
// stopwords.rs: stopwords::{Language, NLTK}), reproduced here as a
// standalone word list per the ten languages the spec fixes support
// for. Entries here are not required to be pre-sorted: the service in
// stopwords.go sorts each list once at build time before it is used for
// binary search.

var en = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "aren't", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can't",
	"cannot", "could", "couldn't", "did", "didn't", "do", "does",
	"doesn't", "doing", "don't", "down", "during", "each", "few", "for",
	"from", "further", "had", "hadn't", "has", "hasn't", "have", "haven't",
	"having", "he", "her", "here", "hers", "herself", "him", "himself",
	"his", "how", "i", "if", "in", "into", "is", "isn't", "it", "its",
	"itself", "let's", "me", "more", "most", "my", "myself", "no", "nor",
	"not", "of", "off", "on", "once", "only", "or", "other", "ought",
	"our", "ours", "ourselves", "out", "over", "own", "same", "she",
	"should", "shouldn't", "so", "some", "such", "than", "that", "the",
	"their", "theirs", "them", "themselves", "then", "there", "these",
	"they", "this", "those", "through", "to", "too", "under", "until",
	"up", "very", "was", "wasn't", "we", "were", "weren't", "what",
	"when", "where", "which", "while", "who", "whom", "why", "with",
	"won't", "would", "wouldn't", "you", "your", "yours", "yourself",
	"yourselves",
}

var fr = []string{
	"au", "aux", "avec", "ce", "ces", "dans", "de", "des", "du", "elle",
	"en", "et", "eux", "il", "ils", "je", "la", "le", "les", "leur",
	"leurs", "lui", "ma", "mais", "me", "même", "mes", "moi", "mon", "ne",
	"nos", "notre", "nous", "on", "ou", "par", "pas", "pour", "qu", "que",
	"qui", "sa", "se", "ses", "son", "sur", "ta", "te", "tes", "toi",
	"ton", "tu", "un", "une", "vos", "votre", "vous", "y",
}

var de = []string{
	"aber", "als", "am", "an", "auch", "auf", "aus", "bei", "bin", "bis",
	"bist", "da", "damit", "dann", "der", "den", "des", "dem", "die",
	"das", "dass", "dein", "deine", "doch", "dort", "du", "durch", "ein",
	"eine", "einem", "einen", "einer", "eines", "er", "es", "euer",
	"eure", "für", "hatte", "hatten", "hier", "hin", "hinter", "ich",
	"ihr", "ihre", "im", "in", "ist", "ja", "jede", "jedem", "jeden",
	"jeder", "jedes", "jener", "jetzt", "kann", "kein", "können", "mein",
	"meine", "mit", "muss", "musste", "nach", "nicht", "nun", "oder",
	"seid", "sein", "seine", "sich", "sie", "sind", "soll", "sollte",
	"sondern", "sonst", "über", "um", "und", "uns", "unser", "unter",
	"viel", "vom", "von", "vor", "wann", "warum", "was", "weil", "weiter",
	"weitere", "wenn", "werde", "werden", "wie", "wieder", "will", "wir",
	"wird", "wirst", "wo", "wollen", "wollte", "würde", "würden", "zu",
	"zum", "zur", "zwar", "zwischen",
}

var es = []string{
	"al", "algo", "algunas", "algunos", "ante", "antes", "como", "con",
	"contra", "cual", "cuando", "de", "del", "desde", "donde", "durante",
	"e", "el", "ella", "ellas", "ellos", "en", "entre", "era", "erais",
	"eran", "eras", "eres", "es", "esa", "esas", "ese", "eso", "esos",
	"esta", "estaba", "estado", "estamos", "estar", "este", "esto",
	"estos", "fue", "fueron", "fui", "fuimos", "ha", "hace", "haces",
	"hago", "han", "hasta", "hay", "la", "las", "le", "les", "lo", "los",
	"mas", "me", "mi", "mis", "mucho", "muy", "nada", "ni", "no", "nos",
	"nosotras", "nosotros", "nuestra", "nuestras", "nuestro", "nuestros",
	"o", "os", "otra", "otras", "otro", "otros", "para", "pero", "poco",
	"por", "porque", "que", "quien", "quienes", "se", "sea", "sido",
	"siendo", "sin", "sobre", "sois", "somos", "son", "soy", "su", "sus",
	"suya", "suyas", "suyo", "suyos", "también", "tanto", "te", "tenemos",
	"tener", "tengo", "ti", "tiene", "tienen", "toda", "todas", "todo",
	"todos", "tu", "tus", "tuya", "tuyas", "tuyo", "tuyos", "tú", "un",
	"una", "uno", "unos", "vosotras", "vosotros", "vuestra", "vuestras",
	"vuestro", "vuestros", "y", "ya", "yo",
}

var sw = []string{
	"alla", "att", "av", "blev", "bli", "blir", "blivit", "de", "dem",
	"den", "denna", "deras", "dess", "dessa", "det", "detta", "dig",
	"din", "dina", "ditt", "du", "efter", "ej", "eller", "en", "er",
	"era", "ert", "ett", "från", "för", "genom", "ha", "hade", "han",
	"hans", "har", "henne", "hennes", "hon", "honom", "hur", "här",
	"ingen", "inom", "inte", "med", "mellan", "men", "mig", "min",
	"mina", "mitt", "mot", "mycket", "ni", "nu", "när", "någon",
	"något", "några", "och", "om", "oss", "på", "samma", "sedan",
	"sig", "sin", "sina", "sitta", "själv", "skulle", "som", "så",
	"sådan", "sådana", "sådant", "till", "under", "upp", "ut", "utan",
	"vad", "var", "vara", "varför", "varit", "varje", "vars", "vi",
	"vid", "vilka", "vilken", "vilket", "vår", "våra", "vårt", "än",
	"är", "åt", "över",
}

var it = []string{
	"a", "al", "allo", "ai", "agli", "all", "agl", "alla", "alle", "con",
	"col", "coi", "da", "dal", "dallo", "dai", "dagli", "dall", "dagl",
	"dalla", "dalle", "di", "del", "dello", "dei", "degli", "dell",
	"degl", "della", "delle", "e", "ebbi", "ebbe", "ebbero", "ed", "era",
	"erano", "essendo", "faccia", "facciamo", "facciano", "facciate",
	"faccio", "facemmo", "facendo", "facesse", "facessero", "facessi",
	"facessimo", "faceste", "facesti", "faceva", "facevamo", "facevano",
	"facevate", "facevi", "facevo", "fai", "fanno", "farai", "faranno",
	"fare", "farebbe", "farebbero", "farei", "faremmo", "faremo",
	"fareste", "faresti", "farete", "farò", "fece", "fecero", "feci",
	"fosse", "fossero", "fossi", "fossimo", "foste", "fosti", "fu",
	"fui", "fummo", "furono", "gli", "ha", "hai", "hanno", "ho", "i",
	"il", "in", "io", "l", "la", "le", "lei", "lo", "loro", "lui", "ma",
	"mi", "mia", "mie", "miei", "mio", "ne", "negli", "nei", "nel",
	"nella", "nelle", "nello", "noi", "non", "nostra", "nostre", "nostri",
	"nostro", "o", "per", "perché", "più", "quale", "quanta", "quante",
	"quanti", "quanto", "quella", "quelle", "quelli", "quello", "questa",
	"queste", "questi", "questo", "sarai", "saranno", "sarebbe",
	"sarebbero", "sarei", "saremmo", "saremo", "sareste", "saresti",
	"sarete", "sarà", "se", "sei", "si", "sia", "siamo", "siano",
	"siate", "siete", "sono", "sta", "stai", "stando", "stanno", "stava",
	"stavamo", "stavano", "stavate", "stavi", "stavo", "stesse",
	"stessero", "stessi", "stessimo", "steste", "stesti", "stette",
	"stettero", "stetti", "stia", "stiamo", "stiano", "stiate", "sto",
	"su", "sua", "sue", "sugli", "sui", "sul", "sull", "sulla", "sulle",
	"sullo", "suo", "suoi", "ti", "tra", "tu", "tua", "tue", "tuo",
	"tuoi", "tutti", "tutto", "un", "una", "uno", "vi", "voi", "vostra",
	"vostre", "vostri", "vostro",
}

var pt = []string{
	"a", "ao", "aos", "aquela", "aquelas", "aquele", "aqueles", "aquilo",
	"as", "até", "com", "como", "da", "das", "de", "dela", "delas",
	"dele", "deles", "depois", "do", "dos", "e", "ela", "elas", "ele",
	"eles", "em", "entre", "era", "eram", "essa", "essas", "esse",
	"esses", "esta", "estas", "este", "estes", "eu", "foi", "foram",
	"fosse", "fossem", "fui", "fôramos", "há", "isso", "isto", "já",
	"lhe", "lhes", "mais", "mas", "me", "mesmo", "meu", "meus", "minha",
	"minhas", "muito", "na", "nas", "nem", "no", "nos", "nossa",
	"nossas", "nosso", "nossos", "num", "numa", "não", "nós", "o", "os",
	"ou", "para", "pela", "pelas", "pelo", "pelos", "por", "qual",
	"quando", "que", "quem", "se", "seja", "sejam", "sem", "ser", "será",
	"seu", "seus", "só", "sua", "suas", "também", "te", "tem", "teu",
	"teus", "teve", "tinha", "tu", "tua", "tuas", "um", "uma", "você",
	"vocês", "à", "às",
}

var ru = []string{
	"а", "без", "более", "больше", "будет", "будто", "бы", "был", "была",
	"были", "было", "быть", "в", "вам", "вас", "весь", "во", "вот", "все",
	"всего", "всех", "вы", "да", "даже", "для", "до", "его", "ее", "ей",
	"ему", "если", "есть", "еще", "же", "за", "здесь", "и", "из", "или",
	"им", "их", "к", "как", "когда", "которая", "которого", "которой",
	"которые", "который", "которых", "кто", "куда", "ли", "лучше", "между",
	"меня", "мне", "много", "может", "можно", "мой", "моя", "мы", "на",
	"над", "надо", "наконец", "нас", "не", "него", "нее", "ней", "нельзя",
	"нет", "ни", "нибудь", "никогда", "ним", "них", "ничего", "но", "ну",
	"о", "об", "один", "он", "она", "они", "оно", "опять", "от", "перед",
	"по", "под", "после", "потом", "потому", "почти", "при", "про", "раз",
	"разве", "с", "сам", "свою", "себе", "себя", "сейчас", "со", "совсем",
	"так", "такой", "там", "тебя", "тем", "теперь", "то", "тогда", "того",
	"тоже", "только", "том", "тот", "три", "тут", "ты", "у", "уж", "уже",
	"хорошо", "хоть", "чего", "человек", "чем", "через", "что", "чтоб",
	"чтобы", "чуть", "эти", "этого", "этой", "этом", "этот", "эту", "я",
}

var nl = []string{
	"aan", "al", "alles", "als", "altijd", "andere", "ben", "bij", "daar",
	"dan", "dat", "de", "der", "deze", "die", "dit", "doch", "doen",
	"door", "dus", "een", "eens", "en", "er", "ge", "geen", "geweest",
	"haar", "had", "heb", "hebben", "heeft", "hem", "het", "hier", "hij",
	"hoe", "hun", "iemand", "iets", "ik", "in", "is", "ja", "je", "kan",
	"kon", "kunnen", "maar", "me", "meer", "men", "met", "mij", "mijn",
	"moet", "na", "naar", "niet", "niets", "nog", "nu", "of", "om",
	"omdat", "ons", "ook", "op", "over", "reeds", "te", "tegen", "toch",
	"toen", "tot", "u", "uit", "uw", "van", "veel", "voor", "want",
	"waren", "was", "wat", "weer", "wel", "werd", "wezen", "wie", "wil",
	"worden", "wordt", "zal", "ze", "zei", "zelf", "zich", "zij", "zijn",
	"zo", "zonder", "zou",
}

var fi = []string{
	"aina", "eli", "emme", "en", "ennen", "ensi", "et", "eteen", "ette",
	"ettei", "että", "hän", "häneen", "hänellä", "hänelle", "hänen",
	"hänessä", "hänestä", "hänet", "hänta", "he", "heidän", "heihin",
	"heille", "heillä", "heissä", "heistä", "heitä", "hän", "ja", "johon",
	"joka", "jokainen", "joksi", "joku", "jolla", "jolle", "jolloin",
	"jolta", "jompikumpi", "jonka", "jos", "jossa", "josta", "jota",
	"jotain", "jotta", "jouduin", "jouduit", "jouduimme", "joudumme",
	"joudutte", "joutua", "joutui", "joutuivat", "joutuu", "joutuvat",
	"jälkeen", "jää", "kanssa", "kanssaan", "kanssamme", "kanssani",
	"kanssanne", "kanssasi", "ken", "keneen", "kenellä", "kenelle",
	"kenen", "kenessä", "kenestä", "kenet", "keneltä", "kenties", "kuin",
	"kuitenkaan", "kuitenkin", "kuka", "kun", "kunnes", "kuten", "kyllä",
	"mihin", "mikä", "mikäli", "mikään", "miksi", "milloin", "minkä",
	"minne", "minua", "minulla", "minulle", "minun", "minussa",
	"minusta", "minut", "minä", "missä", "mistä", "mitä", "mukaan",
	"mutta", "muu", "muualle", "muualta", "muualla", "muuhun", "muun",
	"muusta", "muut", "muuta", "muutama", "ne", "niiden", "niin", "niitä",
	"noin", "nyt", "ole", "olemme", "olen", "olet", "olette", "oli",
	"olimme", "olin", "olisi", "olisimme", "olisin", "olisit", "olisitte",
	"olisivat", "olit", "olitte", "olivat", "olla", "olleet", "olli",
	"ollut", "on", "onkin", "onko", "ovat", "paljon", "perusteella",
	"saakka", "sama", "samaa", "samaan", "samalla", "samallaiset",
	"samoin", "se", "sekä", "sen", "siihen", "siinä", "siitä", "sijaan",
	"siksi", "silloin", "sillä", "silti", "sinua", "sinulla", "sinulle",
	"sinun", "sinussa", "sinusta", "sinut", "sinä", "sitä", "tähän",
	"tai", "tällä", "tämä", "tämän", "tässä", "tästä", "tätä", "te",
	"teidän", "teihin", "teille", "teillä", "teissä", "teistä", "teitä",
	"tuo", "tuohon", "tuolla", "tuolle", "tuolta", "tuon", "tuosta",
	"tuota", "tuskin", "usein", "vaan", "vai", "vaikka", "vasta", "vielä",
	"voi", "voida", "voimme", "voisi", "voit", "voitte", "voivat", "vuoksi",
	"vuosi", "yhdessä", "yksi", "yleensä", "ylös", "ympäri",
}
