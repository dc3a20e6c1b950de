// Package xmcda decodes and encodes valued digraphs in the XMCDA-2.0 format.
//
// # Overview
//
// XMCDA-2 is the decision-deck interchange format. The subset used for valued
// digraphs looks like this:
//
//	<xmcda:XMCDA xmlns:xmcda="http://www.decision-deck.org/2009/XMCDA-2.0.0">
//	  <projectReference id="general_digraph" name="general">...</projectReference>
//	  <alternatives>
//	    <alternative id="a1" name="Site A">
//	      <description><comment>north bank</comment></description>
//	    </alternative>
//	  </alternatives>
//	  <alternativesComparisons name="R">
//	    <valuation>
//	      <quantitative>
//	        <minimum><real>0</real></minimum>
//	        <maximum><real>1</real></maximum>
//	      </quantitative>
//	    </valuation>
//	    <pairs>
//	      <pair>
//	        <initial><alternativeID>a1</alternativeID></initial>
//	        <terminal><alternativeID>a2</alternativeID></terminal>
//	        <value><real>0.80</real></value>
//	      </pair>
//	    </pairs>
//	  </alternativesComparisons>
//	</xmcda:XMCDA>
//
// Numbers are either <real> or <integer> children; both are accepted
// everywhere a number is read (see [Number]).
//
// # Decode
//
// [Decode] and [Unmarshal] build a fresh [digraph.Digraph]. The graph type is
// derived from the project id (an id containing "outranking" marks an
// outranking graph). Pair values are truncated to two decimals. Decoding is
// all-or-nothing: any MALFORMED_DOCUMENT error means no Document is returned,
// so callers can keep their previous model.
//
// # Encode
//
// [Encode] and [Marshal] write the full alternative list and a dense pairs
// block: every ordered pair including self pairs, with the median standing in
// for absent pairs. [Metadata] controls the header fields; zero fields take
// the defaults of the original JavaScript exporter.
package xmcda
