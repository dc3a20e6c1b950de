package xmcda

import "encoding/xml"

// Namespaces and processing instruction written by the encoder.
const (
	namespaceXMCDA = "http://www.decision-deck.org/2009/XMCDA-2.0.0"
	namespaceXSI   = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = "http://www.decision-deck.org/2009/UMCDA-2.0.0 file:../XMCDA-2.0.0.xsd"
	stylesheetPI   = `<?xml-stylesheet type="text/xsl" href="xmcdaXSL.xsl"?>`
)

// Decoding structs. The root element is matched by position, not name, so
// documents with or without the xmcda: prefix decode alike.

type xmlDocument struct {
	Project      *xmlProject      `xml:"projectReference"`
	Alternatives *xmlAlternatives `xml:"alternatives"`
	Comparisons  *xmlComparisons  `xml:"alternativesComparisons"`
}

type xmlProject struct {
	ID      string `xml:"id,attr"`
	Name    string `xml:"name,attr"`
	Title   string `xml:"title"`
	User    string `xml:"user"`
	Author  string `xml:"author"`
	Version string `xml:"version"`
}

type xmlAlternatives struct {
	Alternatives []xmlAlternative `xml:"alternative"`
}

type xmlAlternative struct {
	ID          string          `xml:"id,attr"`
	Name        *string         `xml:"name,attr"`
	Description *xmlDescription `xml:"description"`
}

type xmlDescription struct {
	Children []xmlElement `xml:",any"`
}

type xmlElement struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

type xmlComparisons struct {
	Name      string        `xml:"name,attr"`
	Valuation *xmlValuation `xml:"valuation"`
	Pairs     []xmlPair     `xml:"pairs>pair"`
}

type xmlValuation struct {
	Minimum *Number `xml:"quantitative>minimum"`
	Maximum *Number `xml:"quantitative>maximum"`
}

type xmlPair struct {
	Initial  string  `xml:"initial>alternativeID"`
	Terminal string  `xml:"terminal>alternativeID"`
	Value    *Number `xml:"value"`
}

// Encoding structs. encoding/xml has no namespace prefix support, so the
// prefixed root and xmlns attributes are written as literal names.

type outDocument struct {
	XMLName        xml.Name        `xml:"xmcda:XMCDA"`
	XSI            string          `xml:"xmlns:xsi,attr"`
	SchemaLocation string          `xml:"xsi:schemaLocation,attr"`
	XMCDA          string          `xml:"xmlns:xmcda,attr"`
	Project        outProject      `xml:"projectReference"`
	Alternatives   outAlternatives `xml:"alternatives"`
	Comparisons    outComparisons  `xml:"alternativesComparisons"`
}

type outProject struct {
	ID      string `xml:"id,attr"`
	Name    string `xml:"name,attr"`
	Title   string `xml:"title"`
	PID     string `xml:"id"`
	PName   string `xml:"name"`
	Type    string `xml:"type"`
	User    string `xml:"user"`
	Version string `xml:"version"`
}

type outListDescription struct {
	Title   string `xml:"title,omitempty"`
	Type    string `xml:"type,omitempty"`
	Comment string `xml:"comment,omitempty"`
}

type outAlternatives struct {
	Concept      string             `xml:"mcdaConcept,attr"`
	Description  outListDescription `xml:"description"`
	Alternatives []outAlternative   `xml:"alternative"`
}

type outAlternative struct {
	ID        string `xml:"id,attr"`
	Name      string `xml:"name,attr"`
	Comment   string `xml:"description>comment"`
	Type      string `xml:"type"`
	Active    bool   `xml:"active"`
	Reference bool   `xml:"reference"`
}

type outComparisons struct {
	ID             string            `xml:"id,attr"`
	Name           string            `xml:"name,attr"`
	Description    outListDescription `xml:"description"`
	Valuation      outValuation      `xml:"valuation"`
	ComparisonType string            `xml:"comparisonType"`
	Pairs          outPairs          `xml:"pairs"`
}

type outValuation struct {
	Name     string `xml:"name,attr"`
	SubTitle string `xml:"description>subTitle"`
	Minimum  Number `xml:"quantitative>minimum"`
	Maximum  Number `xml:"quantitative>maximum"`
}

type outPairs struct {
	SubTitle string    `xml:"description>subTitle"`
	Comment  string    `xml:"description>comment"`
	Pairs    []outPair `xml:"pair"`
}

type outPair struct {
	Initial  string `xml:"initial>alternativeID"`
	Terminal string `xml:"terminal>alternativeID"`
	Value    Number `xml:"value"`
}
