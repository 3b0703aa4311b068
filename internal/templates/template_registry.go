package templates

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerSampleTemplates()
	registry.registerSampleHelperTemplates()
	registry.registerScaffoldTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// registerSampleTemplates registers the fragments of an interactive sample view
func (tr *TemplateRegistry) registerSampleTemplates() {
	tr.templates["sample-imports"] = `import SwiftUI
import Zenith
import ZenithCoreInterface
`

	tr.templates["sample-struct-start"] = `
struct {{.SampleName}}: View, @preconcurrency BaseThemeDependencies {
    @Dependency(\.themeConfigurator) var themeConfigurator
`

	tr.templates["sample-states"] = `{{if .States}}
{{range .States}}    {{.}}
{{end}}{{end}}`

	tr.templates["sample-view-options"] = `
    // Opções de visualização
    @State private var showAllStyles = false
    @State private var useContrastBackground = true
    @State private var showFixedHeader = false
`

	tr.templates["sample-body"] = `
    var body: some View {
        SampleWithFixedHeader(
            showFixedHeader: $showFixedHeader,
            content: {
                Card(action: {
                    showFixedHeader.toggle()
                }) {
                    VStack(spacing: 16) {
                        // Preview do componente com configurações atuais
                        previewComponent
                    }
                    .padding()
                }
                .padding()
            },
            config: {
                VStack(spacing: 16) {
                    // Área de configuração
                    configurationSection

                    // Preview do código gerado
                    CodePreviewSection(generateCode: generateSwiftCode)
{{- if .HasStyles}}

                    // Exibição de todos os estilos (opcional)
                    if showAllStyles {
                        Divider().padding(.vertical, 4)

                        VStack(alignment: .leading, spacing: 12) {
                            Text("Todos os Estilos")
                                .font(fonts.mediumBold)
                                .foregroundColor(colors.contentA)

                            ScrollView {
                                VStack(alignment: .leading, spacing: 8) {
{{- if .Functions}}
                                    VStack(alignment: .leading, spacing: 16) {
{{- range .Grid}}
                                        VStack(alignment: .leading) {
                                            Text("{{.Title}}()")
                                                .font(fonts.smallBold)
                                                .foregroundColor(colors.contentA)
                                                .padding(.bottom, 4)

                                            LazyVGrid(columns: [GridItem(.adaptive(minimum: 160))], spacing: 8) {
                                                ForEach(ColorName.allCases, id: \.self) { color in
{{indent 52 .Cell}}
                                                        .padding(8)
                                                        .frame(maxWidth: .infinity)
                                                        .background(
                                                            RoundedRectangle(cornerRadius: 4)
                                                                .fill(getContrastBackground(for: color))
                                                        )
                                                }
                                            }
                                        }
                                        .padding(.vertical, 8)
{{- end}}
                                    }
{{- else}}
                                    LazyVGrid(columns: [GridItem(.adaptive(minimum: 160))], spacing: 8) {
                                        ForEach({{.StyleCaseType}}.allCases, id: \.self) { style in
{{indent 44 .CaseCell}}
                                                .padding(8)
                                                .frame(maxWidth: .infinity)
                                                .background(
                                                    RoundedRectangle(cornerRadius: 4)
                                                        .fill(getContrastBackground(for: getColorFromStyle(style)))
                                                )
                                        }
                                    }
{{- end}}
                                }
                            }
                            .frame(maxHeight: 200)
                        }
                    }
{{- end}}
                }
                .padding(.horizontal)
            }
        )
    }
`

	tr.templates["sample-preview"] = `
    // Preview do componente com as configurações selecionadas
    private var previewComponent: some View {
        VStack {
{{indent 12 .Preview}}
                .padding()
                .frame(maxWidth: .infinity)
                .background(
                    RoundedRectangle(cornerRadius: 8)
                        .fill({{.PreviewBackground}})
                )
        }
    }
`

	tr.templates["sample-configuration"] = `
    // Área de configuração
    private var configurationSection: some View {
        VStack(spacing: 16) {
{{- range .ContentControls}}
{{indent 12 .}}
{{end}}
{{- range .TextProperties}}
            // Campo para editar {{.Name}}
            TextField("{{capitalize .Name}}", text: ${{.Name}})
                .textFieldStyle(RoundedBorderTextFieldStyle())
                .padding(.horizontal)
{{end}}
{{- range .BoolProperties}}
            // Toggle para {{.Name}}
            Toggle("{{capitalize .Name}}", isOn: ${{.Name}})
                .toggleStyle(.default(.highlightA))
                .padding(.horizontal)
{{end}}
{{- range .NumberProperties}}
            // Slider para {{.Name}}
            VStack(alignment: .leading) {
{{- if .IsInteger}}
                Text("{{capitalize .Name}}: \({{.Name}})")
                Slider(value: Binding(
                    get: { Double({{.Name}}) },
                    set: { {{.Name}} = Int($0) }
                ), in: 0...100)
{{- else}}
                Text("{{capitalize .Name}}: \({{.Name}}, specifier: "%.1f")")
                Slider(value: ${{.Name}}, in: 0...1)
{{- end}}
            }
            .padding(.horizontal)
{{end}}
{{- range .EnumProperties}}
            // Seletor para {{.Name}}
            EnumSelector<{{.Type}}>(
                title: "{{capitalize .Name}}",
                selection: ${{.Name}},
                columnsCount: 3,
                height: 120
            )
{{end}}
{{- if .Functions}}
            // Seletor para função de estilo
            EnumSelector<StyleFunctionName>(
                title: "Função de Estilo",
                selection: Binding(
                    get: { StyleFunctionName(rawValue: selectedStyleFunction) ?? .{{.FirstFunction}} },
                    set: { selectedStyleFunction = $0.rawValue }
                ),
                columnsCount: 3,
                height: 120
            )

            // Seletor para cor
            EnumSelector<ColorName>(
                title: "Cor",
                selection: $selectedColorName,
                columnsCount: 3,
                height: 160
            )
{{else if .Cases}}
            // Seletor de estilo
            EnumSelector<{{.StyleCaseType}}>(
                title: "Estilo",
                selection: $selectedStyle,
                columnsCount: 3,
                height: 120
            )
{{end}}
            // Toggles para opções
            VStack {
                Toggle("Usar fundo contrastante", isOn: $useContrastBackground)
                    .toggleStyle(.default(.highlightA))
{{- if .HasStyles}}

                Toggle("Mostrar Todos os Estilos", isOn: $showAllStyles)
                    .toggleStyle(.default(.highlightA))
{{- end}}
            }
            .padding(.horizontal)
        }
    }
`

	tr.templates["sample-codegen"] = `
    // Gera o código Swift para o componente configurado
    private func generateSwiftCode() -> String {
        var code = "// Código gerado automaticamente\n"

        code += """
{{indent 8 .Codegen}}
        """

        return code
    }
`

	tr.templates["sample-struct-end"] = `}
`

	tr.templates["sample-style-function-enum"] = `
// Enum para seleção das funções de estilo
fileprivate enum StyleFunctionName: String, CaseIterable, Identifiable {
    case {{join .FunctionCases ", "}}

    var id: Self { self }
}
`
}

// registerSampleHelperTemplates registers the private helpers appended to a sample view
func (tr *TemplateRegistry) registerSampleHelperTemplates() {
	tr.templates["sample-helper-selected-style"] = `
    // Helper para obter o estilo correspondente à função selecionada
    private func getSelected{{.StyleType}}() -> some {{.StyleType}} {
        switch selectedStyleFunction {
{{- range .Functions}}
        case "{{.Name}}":
            return .{{.Name}}(selectedColorName)
{{- end}}
        default:
            return .{{.FirstFunction}}(selectedColorName)
        }
    }
`

	tr.templates["sample-helper-color-from-style"] = `
    // Obtém a cor associada a um StyleCase
    private func getColorFromStyle(_ style: {{.StyleCaseType}}) -> ColorName {
        let styleName = String(describing: style)

        if styleName.contains("HighlightA") {
            return .highlightA
        } else if styleName.contains("BackgroundA") {
            return .backgroundA
        } else if styleName.contains("BackgroundB") {
            return .backgroundB
        } else if styleName.contains("BackgroundC") {
            return .backgroundC
        } else if styleName.contains("BackgroundD") {
            return .backgroundD
        } else if styleName.contains("ContentA") {
            return .contentA
        } else if styleName.contains("ContentB") {
            return .contentB
        } else if styleName.contains("ContentC") {
            return .contentC
        } else if styleName.contains("Critical") {
            return .critical
        } else if styleName.contains("Attention") {
            return .attention
        } else if styleName.contains("Danger") {
            return .danger
        } else if styleName.contains("Positive") {
            return .positive
        } else {
            return .none
        }
    }
`

	tr.templates["sample-helper-contrast-background"] = `
    // Gera um fundo de contraste adequado para a cor especificada
    private func getContrastBackground(for colorName: ColorName) -> Color {
        let color = colors.color(by: colorName) ?? colors.backgroundB

        // Extrair componentes RGB da cor
        let uiColor = UIColor(color)
        var red: CGFloat = 0
        var green: CGFloat = 0
        var blue: CGFloat = 0
        var alpha: CGFloat = 0

        uiColor.getRed(&red, green: &green, blue: &blue, alpha: &alpha)

        // Calcular luminosidade da cor (fórmula perceptual)
        let luminance = 0.299 * red + 0.587 * green + 0.114 * blue

        // Tratamento específico para cinzas médios (como backgroundC)
        if colorName == .backgroundC || (abs(red - green) < 0.1 && abs(green - blue) < 0.1 && luminance > 0.2 && luminance < 0.4) {
            return Color.white.opacity(0.3)
        }

        // Para cores com luminância média (nem claras nem escuras)
        if luminance > 0.3 && luminance < 0.7 {
            if luminance < 0.5 {
                return Color.white.opacity(0.35)
            } else {
                return Color.black.opacity(0.2)
            }
        }

        // Para cores bem escuras, usar um contraste bem claro
        if luminance < 0.3 {
            return Color.white.opacity(0.4)
        }

        // Para cores bem claras, usar um contraste escuro
        return Color(red: max(red - 0.3, 0.0),
                    green: max(green - 0.3, 0.0),
                    blue: max(blue - 0.3, 0.0))
                .opacity(0.25)
    }
`
}

// registerScaffoldTemplates registers the files of a new component skeleton
func (tr *TemplateRegistry) registerScaffoldTemplates() {
	tr.templates["scaffold-style-configuration"] = `import SwiftUI
import ZenithCoreInterface

public struct Any{{.Name}}Style: {{.Name}}Style & Sendable & Identifiable {
    public let id: UUID = .init()

    nonisolated(unsafe) private let _makeBody: ({{.Name}}StyleConfiguration) -> AnyView

    public init<S: {{.Name}}Style>(_ style: S) {
        _makeBody = { @Sendable configuration in
            AnyView(style.makeBody(configuration: configuration))
        }
    }

    public func makeBody(configuration: {{.Name}}StyleConfiguration) -> some View {
        _makeBody(configuration)
    }
}

public protocol {{.Name}}Style: StyleProtocol & Identifiable {
    typealias Configuration = {{.Name}}StyleConfiguration
}

public struct {{.Name}}StyleConfiguration {
{{- if .Native}}
    let content: {{.Name}}

    init(content: {{.Name}}) {
        self.content = content
    }
{{- else}}
    let text: String

    init(text: String) {
        self.text = text
    }
{{- end}}
}

public struct {{.Name}}StyleKey: EnvironmentKey {
    nonisolated(unsafe) public static let defaultValue: any {{.Name}}Style = Primary{{.Name}}Style()
}

public extension EnvironmentValues {
    var {{.Lower}}Style : any {{.Name}}Style {
        get { self[{{.Name}}StyleKey.self] }
        set { self[{{.Name}}StyleKey.self] = newValue }
    }
}

public extension {{.Name}}Style {
    @MainActor
    func resolve(configuration: Configuration) -> some View {
        Resolved{{.Name}}Style(style: self, configuration: configuration)
    }
}

private struct Resolved{{.Name}}Style<Style: {{.Name}}Style>: View {
    let style: Style
    let configuration: Style.Configuration

    var body: some View {
        style.makeBody(configuration: configuration)
    }
}
`

	tr.templates["scaffold-native-styles"] = `import SwiftUI
import ZenithCoreInterface

public extension {{.Name}} {
    func {{.Lower}}Style(_ style: some {{.Name}}Style) -> some View {
        AnyView(
            style.resolve(
                configuration: {{.Name}}StyleConfiguration(
                    content: self
                )
            )
            .environment(\.{{.Lower}}Style, style)
        )
    }
}

public struct Primary{{.Name}}Style: @preconcurrency {{.Name}}Style, BaseThemeDependencies {
    public var id = String(describing: Self.self)

    @Dependency(\.themeConfigurator) var themeConfigurator

    @MainActor
    public func makeBody(configuration: Configuration) -> some View {
        configuration.content
            .foregroundStyle(colors.textPrimary)
    }
}

public struct Secondary{{.Name}}Style: @preconcurrency {{.Name}}Style, BaseThemeDependencies {
    public var id = String(describing: Self.self)

    @Dependency(\.themeConfigurator) var themeConfigurator

    @MainActor
    public func makeBody(configuration: Configuration) -> some View {
        configuration.content
            .foregroundStyle(colors.textSecondary)
    }
}

public struct Tertiary{{.Name}}Style: @preconcurrency {{.Name}}Style, BaseThemeDependencies {
    public var id = String(describing: Self.self)

    @Dependency(\.themeConfigurator) var themeConfigurator

    @MainActor
    public func makeBody(configuration: Configuration) -> some View {
        configuration.content
            .foregroundStyle(colors.primary)
    }
}

public extension {{.Name}}Style where Self == Primary{{.Name}}Style {
    static func primary() -> Self { Primary{{.Name}}Style() }
}

public extension {{.Name}}Style where Self == Secondary{{.Name}}Style {
    static func secondary() -> Self { Secondary{{.Name}}Style() }
}

public extension {{.Name}}Style where Self == Tertiary{{.Name}}Style {
    static func tertiary() -> Self { Tertiary{{.Name}}Style() }
}

public enum {{.Name}}StyleCase: CaseIterable, Identifiable {
    case primary
    case secondary
    case tertiary

    public var id: Self { self }

    @MainActor
    public func style() -> Any{{.Name}}Style {
        switch self {
        case .primary:
            .init(.primary())
        case .secondary:
            .init(.secondary())
        case .tertiary:
            .init(.tertiary())
        }
    }
}
`

	tr.templates["scaffold-custom-styles"] = `import SwiftUI
import ZenithCoreInterface

public extension View {
    func {{.Lower}}Style(_ style: some {{.Name}}Style) -> some View {
        environment(\.{{.Lower}}Style, style)
    }
}

public struct Primary{{.Name}}Style: @preconcurrency {{.Name}}Style, BaseThemeDependencies {
    public var id = String(describing: Self.self)

    @Dependency(\.themeConfigurator) var themeConfigurator

    public init() {}

    @MainActor
    public func makeBody(configuration: Configuration) -> some View {
        Base{{.Name}}(configuration: configuration)
            .foregroundColor(colors.textPrimary)
    }
}

public struct Secondary{{.Name}}Style: @preconcurrency {{.Name}}Style, BaseThemeDependencies {
    public var id = String(describing: Self.self)

    @Dependency(\.themeConfigurator) var themeConfigurator

    public init() {}

    @MainActor
    public func makeBody(configuration: Configuration) -> some View {
        Base{{.Name}}(configuration: configuration)
            .foregroundColor(colors.textSecondary)
    }
}

public extension {{.Name}}Style where Self == Primary{{.Name}}Style {
    static func primary() -> Self { .init() }
}

public extension {{.Name}}Style where Self == Secondary{{.Name}}Style {
    static func secondary() -> Self { .init() }
}

public enum {{.Name}}StyleCase: CaseIterable, Identifiable {
    case primary
    case secondary

    public var id: Self { self }

    @MainActor
    public func style() -> Any{{.Name}}Style {
        switch self {
        case .primary:
            .init(.primary())
        case .secondary:
            .init(.secondary())
        }
    }
}

private struct Base{{.Name}}: View, @preconcurrency BaseThemeDependencies {
    @Dependency(\.themeConfigurator) var themeConfigurator

    let configuration: {{.Name}}StyleConfiguration

    var body: some View {
        Text(configuration.text)
            .font(fonts.small.font)
    }
}
`

	tr.templates["scaffold-custom-component"] = `import Dependencies
import SwiftUI
import ZenithCoreInterface

public struct {{.Name}}: View {
    @Environment(\.{{.Lower}}Style) private var style

    let text: String

    public init(_ text: String) {
        self.text = text
    }

    public var body: some View {
        AnyView(
            style.resolve(
                configuration: {{.Name}}StyleConfiguration(
                    text: text
                )
            )
        )
    }
}
`

	tr.templates["scaffold-sample"] = `import SwiftUI
import Zenith

struct {{.Name}}Sample: View {
    @State var isExpanded = false

    var body: some View {
        SectionView(
            title: "{{.Upper}}",
            isExpanded: $isExpanded
        ) {
            ForEach({{.Name}}StyleCase.allCases, id: \.self) { style in
                {{.Name}}("Sample {{.Name}}")
                    .{{.Lower}}Style(style.style())
            }
        }
    }
}
`
}
