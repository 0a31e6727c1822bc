package decorator

import (
	"github.com/MSPSL/clientgen/decl"
	"github.com/MSPSL/clientgen/discovery"
)

// Default member and helper names emitted by JSONSerializer. The
// three member names form a stable contract other decorators and
// consumer code may rely on.
const (
	SerializerFieldName    = "serializer"
	SerializerPropertyName = "Serializer"
	ObjectToJSONMethodName = "ObjectToJson"
	objectParamName        = "obj"
	serializeOpName        = "Serialize"
	serializerFactoryName  = "Create"
	writerLocalName        = "tw"
	settingsLocalName      = "settings"
	nullHandlingMember     = "NullValueHandling"
	ignoreEnumMember       = "Ignore"
	toStringOpName         = "ToString"
)

// SerializerNames ties the generated field, property, and method
// together. The property body must reference the field by the same
// name the field declaration used, and the method body must reference
// the property by the same name the accessor used; routing the names
// through one record keeps the three independently built members
// consistent.
type SerializerNames struct {
	Field    string
	Property string
	Method   string
	Param    string

	SerializerType decl.TypeRef
	SettingsType   decl.TypeRef
	NullHandling   decl.TypeRef
	WriterType     decl.TypeRef
	ObjectType     decl.TypeRef
	StringType     decl.TypeRef
}

// DefaultSerializerNames returns the names and types for the
// Newtonsoft.Json serializer surface the generated code targets.
func DefaultSerializerNames() SerializerNames {
	return SerializerNames{
		Field:    SerializerFieldName,
		Property: SerializerPropertyName,
		Method:   ObjectToJSONMethodName,
		Param:    objectParamName,

		SerializerType: decl.NamedType("Newtonsoft.Json", "JsonSerializer"),
		SettingsType:   decl.NamedType("Newtonsoft.Json", "JsonSerializerSettings"),
		NullHandling:   decl.NamedType("Newtonsoft.Json", "NullValueHandling"),
		WriterType:     decl.NamedType("System.IO", "StringWriter"),
		ObjectType:     decl.Builtin("object"),
		StringType:     decl.Builtin("string"),
	}
}

// JSONSerializer adds an ObjectToJson capability to a service class:
// a private serializer field, a private lazily-initializing accessor
// property, and a public ObjectToJson method, in that order.
//
// The generated serializer is configured to omit null-valued fields
// from its JSON output. The generated accessor's compute-once pattern
// carries no synchronization; generated classes assume single-threaded
// first use.
type JSONSerializer struct {
	// Names configures the generated member and type names.
	// DefaultSerializerNames() when zero.
	Names SerializerNames
}

// NewJSONSerializer returns a JSONSerializer with the default names.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{Names: DefaultSerializerNames()}
}

// Name implements Decorator.
func (j *JSONSerializer) Name() string { return "json-serializer" }

// Decorate appends the serializer field, the accessor property, and
// the ObjectToJson method to the class. The service description is
// accepted only to satisfy the decorator contract; the appended
// members do not depend on it.
func (j *JSONSerializer) Decorate(doc *discovery.Document, class *decl.ClassDecl) {
	n := j.names()
	class.AppendMember(buildSerializerField(n))
	class.AppendMember(buildSerializerAccessor(n))
	class.AppendMember(buildObjectToJSONMethod(n))
}

func (j *JSONSerializer) names() SerializerNames {
	if j.Names == (SerializerNames{}) {
		return DefaultSerializerNames()
	}
	return j.Names
}

// buildSerializerField declares the private serializer handle field,
// initialized to null.
func buildSerializerField(n SerializerNames) *decl.FieldDecl {
	return &decl.FieldDecl{
		Name:   n.Field,
		Type:   n.SerializerType,
		Access: decl.Private,
		Init:   decl.Null(),
	}
}

// buildSettingsBlock produces the three statements that construct the
// configured serializer and store it in the field:
//
//	settings := new JsonSerializerSettings()
//	settings.NullValueHandling = NullValueHandling.Ignore
//	this.serializer = JsonSerializer.Create(settings)
//
// The settings object must be fully configured before it reaches the
// factory call; statement order here is interpretation order in the
// emitted code.
func buildSettingsBlock(n SerializerNames) []decl.Stmt {
	return []decl.Stmt{
		decl.DeclareVar(settingsLocalName, n.SettingsType, decl.New(n.SettingsType)),
		decl.Assign(
			decl.Select(decl.Ident(settingsLocalName), nullHandlingMember),
			decl.Select(decl.TypeOf(n.NullHandling), ignoreEnumMember),
		),
		decl.Assign(
			decl.Select(decl.This(), n.Field),
			decl.Call(
				decl.Select(decl.TypeOf(n.SerializerType), serializerFactoryName),
				decl.Ident(settingsLocalName),
			),
		),
	}
}

// buildSerializerAccessor produces the private get-only property that
// lazily initializes the serializer field and returns it.
func buildSerializerAccessor(n SerializerNames) *decl.PropertyDecl {
	field := decl.Select(decl.This(), n.Field)
	return &decl.PropertyDecl{
		Name:    n.Property,
		Type:    n.SerializerType,
		Access:  decl.Private,
		GetOnly: true,
		Body: []decl.Stmt{
			decl.If(decl.Eq(field, decl.Null()), buildSettingsBlock(n)...),
			decl.Return(decl.Select(decl.This(), n.Field)),
		},
	}
}

// buildObjectToJSONMethod produces the public serialization entry
// point:
//
//	public string ObjectToJson(object obj) {
//		StringWriter tw := new StringWriter()
//		this.Serializer.Serialize(tw, obj)
//		return tw.ToString()
//	}
//
// The serialize call routes through the accessor property so the
// first invocation initializes the serializer.
func buildObjectToJSONMethod(n SerializerNames) *decl.MethodDecl {
	return &decl.MethodDecl{
		Name:   n.Method,
		Access: decl.Public,
		Params: []decl.Param{{Name: n.Param, Type: n.ObjectType}},
		Return: n.StringType,
		Body: []decl.Stmt{
			decl.DeclareVar(writerLocalName, n.WriterType, decl.New(n.WriterType)),
			decl.Eval(decl.Call(
				decl.Select(decl.Select(decl.This(), n.Property), serializeOpName),
				decl.Ident(writerLocalName),
				decl.Ident(n.Param),
			)),
			decl.Return(decl.Call(decl.Select(decl.Ident(writerLocalName), toStringOpName))),
		},
	}
}
