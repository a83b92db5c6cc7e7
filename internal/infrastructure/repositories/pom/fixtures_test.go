//go:build unit

package pom_test

const samplePom = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <parent>
    <groupId>org.example</groupId>
    <artifactId>parent</artifactId>
    <version>7</version>
  </parent>
  <artifactId>demo</artifactId>
  <name>Demo Service</name>
  <properties>
    <guava.version>31.0-jre</guava.version>
    <slf4j.version>${base.slf4j}</slf4j.version>
    <base.slf4j>1.7.36</base.slf4j>
  </properties>
  <dependencies>
    <dependency>
      <groupId>com.google.guava</groupId>
      <artifactId>guava</artifactId>
      <version>${guava.version}</version>
    </dependency>
    <dependency>
      <groupId>junit</groupId>
      <artifactId>junit</artifactId>
      <version> 4.12 </version>
      <scope>test</scope>
    </dependency>
    <dependency>
      <groupId>${project.groupId}</groupId>
      <artifactId>demo-api</artifactId>
      <version>${project.version}</version>
    </dependency>
  </dependencies>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>org.slf4j</groupId>
        <artifactId>slf4j-api</artifactId>
        <version>${slf4j.version}</version>
      </dependency>
    </dependencies>
  </dependencyManagement>
</project>
`

// latin1Pom declares ISO-8859-1 and holds a raw 0xE9 byte in its name.
const latin1Pom = "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
	"<project>\n" +
	"  <artifactId>legacy</artifactId>\n" +
	"  <name>Caf\xe9 Library</name>\n" +
	"  <dependencies>\n" +
	"    <dependency>\n" +
	"      <groupId>commons-io</groupId>\n" +
	"      <artifactId>commons-io</artifactId>\n" +
	"      <version>2.4</version>\n" +
	"    </dependency>\n" +
	"  </dependencies>\n" +
	"</project>\n"
