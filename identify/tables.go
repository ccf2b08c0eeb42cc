package identify

// extensions maps a lower-cased file extension to its tags.
var extensions = map[string][]string{
	"adoc":        {"text", "asciidoc"},
	"ai":          {"binary", "adobe-illustrator"},
	"asciidoc":    {"text", "asciidoc"},
	"astro":       {"text", "astro"},
	"avif":        {"binary", "image", "avif"},
	"avsc":        {"text", "avro-schema"},
	"bash":        {"text", "shell", "bash"},
	"bat":         {"text", "batch"},
	"bats":        {"text", "shell", "bash", "bats"},
	"bazel":       {"text", "bazel"},
	"bib":         {"text", "bib"},
	"bmp":         {"binary", "image", "bitmap"},
	"bz2":         {"binary", "bzip2"},
	"bzl":         {"text", "bazel"},
	"c":           {"text", "c"},
	"c++":         {"text", "c++"},
	"cc":          {"text", "c++"},
	"cfg":         {"text"},
	"cjs":         {"text", "javascript"},
	"clj":         {"text", "clojure"},
	"cljc":        {"text", "clojure"},
	"cljs":        {"text", "clojure", "clojurescript"},
	"cmake":       {"text", "cmake"},
	"cnf":         {"text", "cnf"},
	"coffee":      {"text", "coffee"},
	"conf":        {"text", "conf"},
	"cpp":         {"text", "c++"},
	"cr":          {"text", "crystal"},
	"crt":         {"text", "pem"},
	"cs":          {"text", "c#"},
	"csh":         {"text", "shell", "csh"},
	"csproj":      {"text", "xml", "csproj", "msbuild"},
	"css":         {"text", "css"},
	"csv":         {"text", "csv"},
	"cu":          {"text", "cuda"},
	"cue":         {"text", "cue"},
	"cuh":         {"text", "cuda"},
	"cxx":         {"text", "c++"},
	"dart":        {"text", "dart"},
	"def":         {"text", "def"},
	"dll":         {"binary"},
	"dtd":         {"text", "dtd"},
	"ear":         {"binary", "zip", "jar"},
	"edn":         {"text", "clojure", "edn"},
	"ejs":         {"text", "ejs"},
	"env":         {"text", "dotenv"},
	"eot":         {"binary", "eot"},
	"eps":         {"binary", "eps"},
	"erb":         {"text", "erb"},
	"erl":         {"text", "erlang"},
	"ex":          {"text", "elixir"},
	"exe":         {"binary"},
	"exs":         {"text", "elixir"},
	"eyaml":       {"text", "yaml"},
	"f03":         {"text", "fortran"},
	"f08":         {"text", "fortran"},
	"f90":         {"text", "fortran"},
	"f95":         {"text", "fortran"},
	"feature":     {"text", "gherkin"},
	"fish":        {"text", "fish"},
	"gd":          {"text", "gdscript"},
	"gemspec":     {"text", "ruby"},
	"geojson":     {"text", "geojson", "json"},
	"gif":         {"binary", "image", "gif"},
	"gleam":       {"text", "gleam"},
	"go":          {"text", "go"},
	"gotmpl":      {"text", "gotmpl"},
	"gpx":         {"text", "gpx", "xml"},
	"gradle":      {"text", "groovy"},
	"graphql":     {"text", "graphql"},
	"groovy":      {"text", "groovy"},
	"gyp":         {"text", "gyp", "python"},
	"gypi":        {"text", "gyp", "python"},
	"gz":          {"binary", "gzip"},
	"h":           {"text", "header", "c", "c++"},
	"hbs":         {"text", "handlebars"},
	"hcl":         {"text", "hcl"},
	"hh":          {"text", "header", "c++"},
	"hpp":         {"text", "header", "c++"},
	"hrl":         {"text", "erlang"},
	"hs":          {"text", "haskell"},
	"htm":         {"text", "html"},
	"html":        {"text", "html"},
	"hxx":         {"text", "header", "c++"},
	"icns":        {"binary", "icns"},
	"ico":         {"binary", "icon"},
	"ics":         {"text", "icalendar"},
	"idl":         {"text", "idl"},
	"idr":         {"text", "idris"},
	"inc":         {"text", "inc"},
	"ini":         {"text", "ini"},
	"inl":         {"text", "inl", "c++"},
	"ino":         {"text", "ino", "c++"},
	"ipynb":       {"text", "jupyter"},
	"j2":          {"text", "jinja"},
	"jade":        {"text", "jade"},
	"jar":         {"binary", "zip", "jar"},
	"java":        {"text", "java"},
	"jenkinsfile": {"text", "groovy", "jenkins"},
	"jinja":       {"text", "jinja"},
	"jinja2":      {"text", "jinja"},
	"jl":          {"text", "julia"},
	"jpeg":        {"binary", "image", "jpeg"},
	"jpg":         {"binary", "image", "jpeg"},
	"js":          {"text", "javascript"},
	"json":        {"text", "json"},
	"json5":       {"text", "json5"},
	"jsonld":      {"text", "json", "jsonld"},
	"jsonnet":     {"text", "jsonnet"},
	"jsx":         {"text", "jsx"},
	"key":         {"text", "pem"},
	"kml":         {"text", "kml", "xml"},
	"kt":          {"text", "kotlin"},
	"kts":         {"text", "kotlin"},
	"lean":        {"text", "lean"},
	"less":        {"text", "less"},
	"lhs":         {"text", "literate-haskell"},
	"libsonnet":   {"text", "jsonnet"},
	"liquid":      {"text", "liquid"},
	"lua":         {"text", "lua"},
	"m":           {"text", "objective-c"},
	"m4":          {"text", "m4"},
	"make":        {"text", "makefile"},
	"markdown":    {"text", "markdown"},
	"md":          {"text", "markdown"},
	"mdx":         {"text", "mdx"},
	"meson":       {"text", "meson"},
	"mjs":         {"text", "javascript"},
	"mk":          {"text", "makefile"},
	"ml":          {"text", "ocaml"},
	"mli":         {"text", "ocaml"},
	"mm":          {"text", "c++", "objective-c++"},
	"mustache":    {"text", "mustache"},
	"nim":         {"text", "nim"},
	"nimble":      {"text", "nimble"},
	"nims":        {"text", "nim"},
	"nix":         {"text", "nix"},
	"njk":         {"text", "nunjucks"},
	"otf":         {"binary", "otf"},
	"p12":         {"binary", "p12"},
	"pas":         {"text", "pascal"},
	"patch":       {"text", "diff"},
	"pdf":         {"binary", "pdf"},
	"pem":         {"text", "pem"},
	"php":         {"text", "php"},
	"php4":        {"text", "php"},
	"php5":        {"text", "php"},
	"phtml":       {"text", "php"},
	"pl":          {"text", "perl"},
	"plantuml":    {"text", "plantuml"},
	"pm":          {"text", "perl"},
	"png":         {"binary", "image", "png"},
	"po":          {"text", "pofile"},
	"pp":          {"text", "puppet"},
	"prisma":      {"text", "prisma"},
	"properties":  {"text", "java-properties"},
	"proto":       {"text", "proto"},
	"ps1":         {"text", "powershell"},
	"psd1":        {"text", "powershell"},
	"psm1":        {"text", "powershell"},
	"pug":         {"text", "pug"},
	"puml":        {"text", "plantuml"},
	"purs":        {"text", "purescript"},
	"pxd":         {"text", "cython"},
	"pxi":         {"text", "cython"},
	"py":          {"text", "python"},
	"pyi":         {"text", "pyi"},
	"pyproj":      {"text", "xml", "pyproj", "msbuild"},
	"pyx":         {"text", "cython"},
	"pyz":         {"binary", "pyz"},
	"qml":         {"text", "qml"},
	"r":           {"text", "r"},
	"rake":        {"text", "ruby"},
	"rb":          {"text", "ruby"},
	"resx":        {"text", "resx", "xml"},
	"rs":          {"text", "rust"},
	"rst":         {"text", "rst"},
	"s":           {"text", "asm"},
	"sass":        {"text", "sass"},
	"sbt":         {"text", "sbt", "scala"},
	"sc":          {"text", "scala"},
	"scala":       {"text", "scala"},
	"scm":         {"text", "scheme"},
	"scss":        {"text", "scss"},
	"sh":          {"text", "shell", "sh"},
	"sln":         {"text", "sln"},
	"sls":         {"text", "salt"},
	"so":          {"binary"},
	"sol":         {"text", "solidity"},
	"sql":         {"text", "sql"},
	"ss":          {"text", "scheme"},
	"sty":         {"text", "tex"},
	"styl":        {"text", "stylus"},
	"sv":          {"text", "system-verilog"},
	"svelte":      {"text", "svelte"},
	"svg":         {"text", "image", "svg", "xml"},
	"svh":         {"text", "system-verilog"},
	"swift":       {"text", "swift"},
	"tar":         {"binary", "tar"},
	"tex":         {"text", "tex"},
	"textproto":   {"text", "textproto"},
	"tf":          {"text", "terraform"},
	"tfvars":      {"text", "terraform"},
	"tgz":         {"binary", "gzip"},
	"thrift":      {"text", "thrift"},
	"tiff":        {"binary", "image", "tiff"},
	"toml":        {"text", "toml"},
	"ts":          {"text", "ts"},
	"tsv":         {"text", "tsv"},
	"tsx":         {"text", "tsx"},
	"ttf":         {"binary", "ttf"},
	"twig":        {"text", "twig"},
	"txt":         {"text", "plain-text"},
	"txtpb":       {"text", "textproto"},
	"v":           {"text", "verilog"},
	"vb":          {"text", "vb"},
	"vh":          {"text", "verilog"},
	"vhd":         {"text", "vhdl"},
	"vim":         {"text", "vim"},
	"vue":         {"text", "vue"},
	"war":         {"binary", "zip", "jar"},
	"wav":         {"binary", "audio", "wav"},
	"webp":        {"binary", "image", "webp"},
	"whl":         {"binary", "wheel", "zip"},
	"woff":        {"binary", "woff"},
	"woff2":       {"binary", "woff2"},
	"xhtml":       {"text", "xml", "html", "xhtml"},
	"xml":         {"text", "xml"},
	"xq":          {"text", "xquery"},
	"xquery":      {"text", "xquery"},
	"xsd":         {"text", "xml", "xsd"},
	"xsl":         {"text", "xml", "xsl"},
	"xslt":        {"text", "xml", "xsl"},
	"yaml":        {"text", "yaml"},
	"yang":        {"text", "yang"},
	"yml":         {"text", "yaml"},
	"zig":         {"text", "zig"},
	"zip":         {"binary", "zip"},
	"zsh":         {"text", "shell", "zsh"},
}

// names maps an exact base name to its tags. A name match wins over the extension.
var names = map[string][]string{
	".babelrc":               {"text", "json", "babelrc"},
	".bash_aliases":          {"text", "shell", "bash"},
	".bash_profile":          {"text", "shell", "bash"},
	".bashrc":                {"text", "shell", "bash"},
	".bowerrc":               {"text", "json", "bowerrc"},
	".browserslistrc":        {"text", "browserslistrc"},
	".clang-format":          {"text", "yaml"},
	".clang-tidy":            {"text", "yaml"},
	".codespellrc":           {"text", "ini", "codespellrc"},
	".coveragerc":            {"text", "ini", "coveragerc"},
	".cshrc":                 {"text", "shell", "csh"},
	".dockerignore":          {"text", "dockerignore"},
	".editorconfig":          {"text", "editorconfig"},
	".envrc":                 {"text", "shell", "bash", "envrc"},
	".flake8":                {"text", "ini", "flake8"},
	".gitattributes":         {"text", "gitattributes"},
	".gitconfig":             {"text", "ini", "gitconfig"},
	".gitignore":             {"text", "gitignore"},
	".gitlint":               {"text", "ini", "gitlint"},
	".gitmodules":            {"text", "gitmodules"},
	".hgrc":                  {"text", "ini", "hgrc"},
	".isort.cfg":             {"text", "ini", "isort"},
	".jshintrc":              {"text", "json", "jshintrc"},
	".mailmap":               {"text", "mailmap"},
	".npmignore":             {"text", "npmignore"},
	".pdbrc":                 {"text", "python", "pdbrc"},
	".pre-commit-hooks.yaml": {"text", "yaml"},
	".prettierignore":        {"text", "gitignore", "prettierignore"},
	".pypirc":                {"text", "ini", "pypirc"},
	".yamllint":              {"text", "yaml", "yamllint"},
	".zshrc":                 {"text", "shell", "zsh"},
	"AUTHORS":                {"text", "plain-text"},
	"BUILD":                  {"text", "bazel"},
	"CHANGELOG":              {"text", "plain-text"},
	"CMakeLists.txt":         {"text", "cmake"},
	"CONTRIBUTING":           {"text", "plain-text"},
	"COPYING":                {"text", "plain-text"},
	"Cargo.lock":             {"text", "toml", "cargo-lock"},
	"Cargo.toml":             {"text", "toml", "cargo"},
	"Dockerfile":             {"text", "dockerfile"},
	"GNUmakefile":            {"text", "makefile"},
	"Gemfile":                {"text", "ruby"},
	"Jenkinsfile":            {"text", "groovy", "jenkins"},
	"LICENSE":                {"text", "plain-text"},
	"MAINTAINERS":            {"text", "plain-text"},
	"Makefile":               {"text", "makefile"},
	"NEWS":                   {"text", "plain-text"},
	"NOTICE":                 {"text", "plain-text"},
	"PATENTS":                {"text", "plain-text"},
	"PKGBUILD":               {"text", "bash", "pkgbuild", "alpm"},
	"Pipfile":                {"text", "toml"},
	"Pipfile.lock":           {"text", "json"},
	"README":                 {"text", "plain-text"},
	"Rakefile":               {"text", "ruby"},
	"Vagrantfile":            {"text", "ruby"},
	"WORKSPACE":              {"text", "bazel"},
	"go.mod":                 {"text", "go-mod"},
	"go.sum":                 {"text", "go-sum"},
	"makefile":               {"text", "makefile"},
	"meson.build":            {"text", "meson"},
	"poetry.lock":            {"text", "toml"},
	"pom.xml":                {"text", "pom", "xml"},
	"pylintrc":               {"text", "ini", "pylintrc"},
	"setup.cfg":              {"text", "ini"},
	"wscript":                {"text", "python"},
}

// interpreters maps a shebang interpreter to its tags.
var interpreters = map[string][]string{
	"ash":     {"shell", "ash"},
	"awk":     {"awk"},
	"bash":    {"shell", "bash"},
	"bats":    {"shell", "bash", "bats"},
	"csh":     {"shell", "csh"},
	"dash":    {"shell", "dash"},
	"expect":  {"expect"},
	"ksh":     {"shell", "ksh"},
	"lua":     {"lua"},
	"node":    {"javascript"},
	"nodejs":  {"javascript"},
	"perl":    {"perl"},
	"php":     {"php"},
	"python":  {"python"},
	"python2": {"python", "python2"},
	"python3": {"python", "python3"},
	"ruby":    {"ruby"},
	"sh":      {"shell", "sh"},
	"tcsh":    {"shell", "tcsh"},
	"zsh":     {"shell", "zsh"},
}
