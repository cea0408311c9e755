package guideline

// Category names (exported consts for IDE completion; renaming or removing one
// is a breaking change, adding one is not).
const (
	CategoryNaming           = "naming"
	CategoryInteroperability = "interoperability"
	CategoryPredictability   = "predictability"
	CategoryFlexibility      = "flexibility"
	CategoryTypeSafety       = "type-safety"
	CategoryDependability    = "dependability"
	CategoryDebuggability    = "debuggability"
	CategoryFutureProofing   = "future-proofing"
	CategoryNecessities      = "necessities"
	CategoryDocumentation    = "documentation"
	CategoryMacros           = "macros"
)

// Naming guideline identifiers.
const (
	// CCase: casing conforms to RFC 430.
	CCase = "C-CASE"
	// CConv: ad-hoc conversions follow as_, to_, into_ conventions.
	CConv = "C-CONV"
	// CGetter: getter names follow Rust convention.
	CGetter = "C-GETTER"
	// CIter: methods on collections that produce iterators follow iter, iter_mut, into_iter.
	CIter = "C-ITER"
	// CIterTy: iterator type names match the methods that produce them.
	CIterTy = "C-ITER-TY"
	// CFeature: feature names are free of placeholder words.
	CFeature = "C-FEATURE"
	// CWordOrder: names use a consistent word order.
	CWordOrder = "C-WORD-ORDER"
)

// Interoperability guideline identifiers.
const (
	// CCommonTraits: types eagerly implement common traits.
	CCommonTraits = "C-COMMON-TRAITS"
	// CConvTraits: conversions use the standard traits From, AsRef, AsMut.
	CConvTraits = "C-CONV-TRAITS"
	// CCollect: collections implement FromIterator and Extend.
	CCollect = "C-COLLECT"
	// CSerde: data structures implement Serde's Serialize, Deserialize.
	CSerde = "C-SERDE"
	// CSendSync: types are Send and Sync where possible.
	CSendSync = "C-SEND-SYNC"
	// CGoodErr: error types are meaningful and well-behaved.
	CGoodErr = "C-GOOD-ERR"
	// CNumFmt: binary number types provide Hex, Octal, Binary formatting.
	CNumFmt = "C-NUM-FMT"
	// CRwValue: generic reader/writer functions take R: Read and W: Write by value.
	CRwValue = "C-RW-VALUE"
)

// Predictability guideline identifiers.
const (
	// CSmartPtr: smart pointers do not add inherent methods.
	CSmartPtr = "C-SMART-PTR"
	// CConvSpecific: conversions live on the most specific type involved.
	CConvSpecific = "C-CONV-SPECIFIC"
	// CMethod: functions with a clear receiver are methods.
	CMethod = "C-METHOD"
	// CNoOut: functions do not take out-parameters.
	CNoOut = "C-NO-OUT"
	// COverload: operator overloads are unsurprising.
	COverload = "C-OVERLOAD"
	// CDeref: only smart pointers implement Deref and DerefMut.
	CDeref = "C-DEREF"
	// CCtor: constructors are static, inherent methods.
	CCtor = "C-CTOR"
)

// Flexibility guideline identifiers.
const (
	// CIntermediate: functions expose intermediate results to avoid duplicate work.
	CIntermediate = "C-INTERMEDIATE"
	// CCallerControl: caller decides where to copy and place data.
	CCallerControl = "C-CALLER-CONTROL"
	// CGeneric: functions minimize assumptions about parameters by using generics.
	CGeneric = "C-GENERIC"
	// CObject: traits are object-safe if they may be useful as a trait object.
	CObject = "C-OBJECT"
)

// Type safety guideline identifiers.
const (
	// CNewtype: newtypes provide static distinctions.
	CNewtype = "C-NEWTYPE"
	// CCustomType: arguments convey meaning through types, not bool or Option.
	CCustomType = "C-CUSTOM-TYPE"
	// CBitflag: types for a set of flags are bitflags, not enums.
	CBitflag = "C-BITFLAG"
	// CBuilder: builders enable construction of complex values.
	CBuilder = "C-BUILDER"
)

// Dependability guideline identifiers.
const (
	// CValidate: functions validate their arguments.
	CValidate = "C-VALIDATE"
	// CDtorFail: destructors never fail.
	CDtorFail = "C-DTOR-FAIL"
	// CDtorBlock: destructors that may block have alternatives.
	CDtorBlock = "C-DTOR-BLOCK"
)

// Debuggability guideline identifiers.
const (
	// CDebug: all public types implement Debug.
	CDebug = "C-DEBUG"
	// CDebugNonempty: debug representation is never empty.
	CDebugNonempty = "C-DEBUG-NONEMPTY"
)

// Future proofing guideline identifiers.
const (
	// CSealed: sealed traits protect against downstream implementations.
	CSealed = "C-SEALED"
	// CStructPrivate: structs have private fields.
	CStructPrivate = "C-STRUCT-PRIVATE"
	// CNewtypeHide: newtypes encapsulate implementation details.
	CNewtypeHide = "C-NEWTYPE-HIDE"
	// CStructBounds: data structures do not duplicate derived trait bounds.
	CStructBounds = "C-STRUCT-BOUNDS"
)

// Necessities guideline identifiers.
const (
	// CStable: public dependencies of a stable crate are stable.
	CStable = "C-STABLE"
	// CPermissive: crate and its dependencies have a permissive license.
	CPermissive = "C-PERMISSIVE"
)

// Documentation guideline identifiers.
const (
	// CCrateDoc: crate level docs are thorough and include examples.
	CCrateDoc = "C-CRATE-DOC"
	// CExample: all items have a rustdoc example.
	CExample = "C-EXAMPLE"
	// CQuestionMark: examples use ?, not try!, not unwrap.
	CQuestionMark = "C-QUESTION-MARK"
	// CFailure: function docs include error, panic, and safety considerations.
	CFailure = "C-FAILURE"
	// CLink: prose contains hyperlinks to relevant things.
	CLink = "C-LINK"
	// CMetadata: Cargo.toml includes all common metadata.
	CMetadata = "C-METADATA"
	// CRelnotes: release notes document all significant changes.
	CRelnotes = "C-RELNOTES"
	// CHidden: rustdoc does not show unhelpful implementation details.
	CHidden = "C-HIDDEN"
)

// Macro guideline identifiers.
const (
	// CEvocative: input syntax is evocative of the output.
	CEvocative = "C-EVOCATIVE"
	// CMacroAttr: item macros compose well with attributes.
	CMacroAttr = "C-MACRO-ATTR"
	// CAnywhere: item macros work anywhere that items are allowed.
	CAnywhere = "C-ANYWHERE"
	// CMacroVis: item macros support visibility specifiers.
	CMacroVis = "C-MACRO-VIS"
	// CMacroTy: type fragments are flexible.
	CMacroTy = "C-MACRO-TY"
)
